package handlers

import (
	"log"
	"net/http"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/services"
	"github.com/codebyjossaya/vt-backend/internal/token"
)

// VaultTokenCodec определяет операции над токеном хранилища.
// Это позволит нам легко подменять реализацию (например, для тестов).
type VaultTokenCodec interface {
	Mint(ownerSubjectID string) (string, string, error)
	Verify(signed string) (*token.Claims, error)
}

// AuthHandler обрабатывает HTTP-запросы выпуска и проверки токенов.
type AuthHandler struct {
	codec      VaultTokenCodec
	provider   identity.Provider
	membership services.MembershipService
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(codec VaultTokenCodec, provider identity.Provider, membership services.MembershipService) *AuthHandler {
	return &AuthHandler{codec: codec, provider: provider, membership: membership}
}

// GetToken обменивает пользовательский токен на токен хранилища:
// личность проверяется у провайдера, затем выпускается бессрочный
// самоподписанный токен с новым vault_id.
func (h *AuthHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AuthHandler] Получен запрос на выпуск токена хранилища")

	var req models.MintTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserToken == "" {
		writeError(w, missingField("требуется токен пользователя"))
		return
	}

	ident, err := h.provider.VerifyIDToken(r.Context(), req.UserToken)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	vaultID, signed, err := h.codec.Mint(ident.SubjectID)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка выпуска токена для %s: %v", ident.SubjectID, err)
		writeError(w, err)
		return
	}

	log.Printf("[AuthHandler] Токен хранилища %s выпущен для %s", vaultID, ident.SubjectID)
	writeSuccess(w, map[string]any{
		"vault_id": vaultID,
		"token":    signed,
		"user":     ident,
	})
}

// VerifyToken проверяет подпись токена хранилища и возвращает его
// полезную нагрузку.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AuthHandler] Получен запрос на проверку токена хранилища")

	var req models.VerifyTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.VaultToken == "" {
		writeError(w, missingField("требуется токен хранилища"))
		return
	}

	claims, err := h.codec.Verify(req.VaultToken)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("[AuthHandler] Токен хранилища %s проверен", claims.VaultID)
	writeSuccess(w, map[string]any{
		"vault_id":         claims.VaultID,
		"owner_subject_id": claims.OwnerSubjectID,
	})
}

// VerifyUser проверяет по запросу хранилища, что пользователь состоит
// в нем. Вызывается агентом перед допуском входящего подключения.
func (h *AuthHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AuthHandler] Получен запрос хранилища на проверку пользователя")

	var req models.VerifyUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserToken == "" || req.VaultToken == "" {
		writeError(w, missingField("требуются токены пользователя и хранилища"))
		return
	}

	claims, err := h.codec.Verify(req.VaultToken)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	ident, err := h.provider.VerifyIDToken(r.Context(), req.UserToken)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	member, err := h.membership.VerifyMembership(r.Context(), claims.VaultID, ident.SubjectID)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка проверки членства %s в %s: %v", ident.SubjectID, claims.VaultID, err)
		writeError(w, err)
		return
	}
	if !member {
		log.Printf("[AuthHandler] Пользователь %s не авторизован в хранилище %s", ident.SubjectID, claims.VaultID)
		writeError(w, services.ErrNotAuthorized)
		return
	}

	log.Printf("[AuthHandler] Членство пользователя %s в хранилище %s подтверждено", ident.SubjectID, claims.VaultID)
	writeSuccess(w, map[string]any{"uid": ident.SubjectID})
}
