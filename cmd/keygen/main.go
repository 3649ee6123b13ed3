// Утилита генерации RSA-ключей подписи токенов хранилищ.
// Создает пару private.key / public.key в формате PKCS#1 PEM;
// private.key передается серверу через VAULT_SIGNING_KEY_FILE.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const keyBits = 2048

func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка генерации ключей: %v", err)
		os.Exit(1)
	}
}

func run() error {
	outDir := flag.String("out", ".", "Каталог для записи private.key и public.key")
	flag.Parse()

	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return fmt.Errorf("ошибка генерации RSA-ключа: %w", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
	})

	privatePath := filepath.Join(*outDir, "private.key")
	publicPath := filepath.Join(*outDir, "public.key")

	if err = os.WriteFile(privatePath, privatePEM, 0o600); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", privatePath, err)
	}
	if err = os.WriteFile(publicPath, publicPEM, 0o644); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", publicPath, err)
	}

	log.Printf("Ключи сгенерированы: %s и %s", privatePath, publicPath)
	return nil
}
