// Package token выпускает и проверяет самоподписанные токены хранилищ.
//
// Токен хранилища - бессрочный RS256 JWT над парой
// {vault_id, owner_subject_id}. Отсутствие exp - осознанное решение:
// токен живёт столько же, сколько само хранилище, а отзыв возможен
// только через удаление членства (см. MembershipService). Ключевая
// пара передаётся в конструктор явно, глобального состояния нет.
package token

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"log"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
)

// Длина случайной части идентификатора хранилища: vault_<9 символов base36>.
const vaultIDLength = 9

const vaultIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ErrInvalidSignature возвращается, если подпись токена не проходит
// проверку или полезная нагрузка не разбирается как токен хранилища.
var ErrInvalidSignature = errors.New("невалидный токен хранилища")

// Claims - полезная нагрузка токена хранилища.
type Claims struct {
	VaultID        string `json:"vault_id"`
	OwnerSubjectID string `json:"owner_subject_id"`
	jwt.RegisteredClaims
}

// Codec выпускает и проверяет токены хранилищ одной ключевой парой.
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewCodec создает кодек на заданном приватном ключе (RSA-2048).
// Публичный ключ для проверки берется из приватного.
func NewCodec(privateKey *rsa.PrivateKey) *Codec {
	return &Codec{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
	}
}

// NewCodecFromPEM создает кодек из PEM-представления приватного ключа
// (PKCS#1 или PKCS#8, как генерирует cmd/keygen).
func NewCodecFromPEM(privateKeyPEM []byte) (*Codec, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора приватного ключа: %w", err)
	}
	return NewCodec(key), nil
}

// Mint генерирует новый vault_id и подписывает токен хранилища для
// указанного владельца. Чистая криптографическая операция, без побочных
// эффектов; уникальность vault_id обеспечивается размером случайного
// пространства, а не проверкой по базе.
func (c *Codec) Mint(ownerSubjectID string) (string, string, error) {
	vaultID, err := NewVaultID()
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации vault_id: %w", err)
	}

	claims := Claims{
		VaultID:        vaultID,
		OwnerSubjectID: ownerSubjectID,
		// Намеренно без ExpiresAt: токен бессрочный.
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.privateKey)
	if err != nil {
		return "", "", fmt.Errorf("ошибка подписи токена хранилища: %w", err)
	}

	log.Printf("[TokenCodec] Выпущен токен хранилища %s для владельца %s", vaultID, ownerSubjectID)
	return vaultID, signed, nil
}

// Verify проверяет подпись токена хранилища и возвращает его полезную
// нагрузку. Срок действия не проверяется - exp в токене отсутствует.
func (c *Codec) Verify(signed string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		// Принимаем только RSA-подпись, иначе подмена алгоритма
		// (например, на none или HS256) прошла бы проверку.
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return c.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		log.Printf("[TokenCodec] Ошибка проверки токена хранилища: %v", err)
		return nil, ErrInvalidSignature
	}
	if !tkn.Valid {
		log.Printf("[TokenCodec] Предоставлен невалидный токен хранилища")
		return nil, ErrInvalidSignature
	}
	if claims.VaultID == "" || claims.OwnerSubjectID == "" {
		log.Printf("[TokenCodec] В токене хранилища отсутствует vault_id или owner_subject_id")
		return nil, ErrInvalidSignature
	}

	return claims, nil
}

// NewVaultID генерирует идентификатор вида vault_<9 случайных символов base36>.
func NewVaultID() (string, error) {
	max := big.NewInt(int64(len(vaultIDAlphabet)))
	buf := make([]byte, vaultIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = vaultIDAlphabet[n.Int64()]
	}
	return "vault_" + string(buf), nil
}
