package handlers

import (
	"log"
	"net/http"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/services"
)

// VaultHandler обрабатывает HTTP-запросы жизненного цикла хранилищ:
// регистрацию, выход, статус, списки и подключение.
type VaultHandler struct {
	codec      VaultTokenCodec
	provider   identity.Provider
	membership services.MembershipService
}

// NewVaultHandler создает новый экземпляр VaultHandler.
func NewVaultHandler(codec VaultTokenCodec, provider identity.Provider, membership services.MembershipService) *VaultHandler {
	return &VaultHandler{codec: codec, provider: provider, membership: membership}
}

// Status обрабатывает обновление статуса хранилища самим агентом.
func (h *VaultHandler) Status(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на обновление статуса хранилища")

	var req models.StatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.VaultToken == "" || req.Status == "" {
		writeError(w, missingField("требуются токен хранилища и статус"))
		return
	}

	claims, err := h.codec.Verify(req.VaultToken)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	if err = h.membership.SetVaultStatus(r.Context(), claims.VaultID, req.Status); err != nil {
		log.Printf("[VaultHandler] Ошибка обновления статуса хранилища %s: %v", claims.VaultID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Статус хранилища %s обновлен на %q", claims.VaultID, req.Status)
	writeSuccess(w, map[string]any{"message": "статус хранилища обновлен"})
}

// GetUsers возвращает хранилищу профили его участников.
func (h *VaultHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на список участников хранилища")

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
		log.Printf("[VaultHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	users, err := h.membership.ListVaultUsers(r.Context(), claims.VaultID)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка получения участников хранилища %s: %v", claims.VaultID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Отдан список из %d участников хранилища %s", len(users), claims.VaultID)
	writeSuccess(w, map[string]any{"users": users})
}

// Register регистрирует хранилище: токен хранилища удостоверяет и
// vault_id, и владельца, от имени которого идет регистрация.
func (h *VaultHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на регистрацию хранилища")

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Token == "" {
		writeError(w, missingField("требуется токен хранилища"))
		return
	}
	if req.VaultName == "" || req.TunnelURL == "" {
		writeError(w, missingField("требуются имя хранилища и адрес туннеля"))
		return
	}

	claims, err := h.codec.Verify(req.Token)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	err = h.membership.RegisterVault(r.Context(), claims.VaultID, claims.OwnerSubjectID, req.VaultName, req.TunnelURL)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка регистрации хранилища %s: %v", claims.VaultID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Хранилище %s зарегистрировано для %s", claims.VaultID, claims.OwnerSubjectID)
	writeSuccess(w, map[string]any{"message": "хранилище зарегистрировано"})
}

// Unregister убирает пользователя из хранилища; вместе с последним
// участником удаляется и само хранилище.
func (h *VaultHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на выход из хранилища")

	var req models.UnregisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserToken == "" || req.VaultID == "" {
		writeError(w, missingField("требуются токен пользователя и идентификатор хранилища"))
		return
	}

	ident, err := h.provider.VerifyIDToken(r.Context(), req.UserToken)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	if err = h.membership.UnregisterVault(r.Context(), req.VaultID, ident.SubjectID); err != nil {
		log.Printf("[VaultHandler] Ошибка выхода %s из хранилища %s: %v", ident.SubjectID, req.VaultID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Пользователь %s вышел из хранилища %s", ident.SubjectID, req.VaultID)
	writeSuccess(w, map[string]any{"message": "пользователь удален из хранилища"})
}

// ListVaults возвращает список хранилищ пользователя с их статусами.
func (h *VaultHandler) ListVaults(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на список хранилищ пользователя")

	var req models.UserTokenRequest
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
		log.Printf("[VaultHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	vaults, err := h.membership.ListUserVaults(r.Context(), ident.SubjectID)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка получения списка хранилищ %s: %v", ident.SubjectID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Пользователю %s отдан список из %d хранилищ", ident.SubjectID, len(vaults))
	writeSuccess(w, map[string]any{"vaults": vaults})
}

// Connect возвращает участнику полную запись хранилища для подключения.
func (h *VaultHandler) Connect(w http.ResponseWriter, r *http.Request) {
	log.Printf("[VaultHandler] Получен запрос на данные хранилища")

	var req models.ConnectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserToken == "" || req.VaultID == "" {
		writeError(w, missingField("требуются токен пользователя и идентификатор хранилища"))
		return
	}

	ident, err := h.provider.VerifyIDToken(r.Context(), req.UserToken)
	if err != nil {
		log.Printf("[VaultHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	vault, err := h.membership.GetVault(r.Context(), req.VaultID, ident.SubjectID)
	if err != nil {
		log.Printf("[VaultHandler] Отказ в данных хранилища %s для %s: %v", req.VaultID, ident.SubjectID, err)
		writeError(w, err)
		return
	}

	log.Printf("[VaultHandler] Данные хранилища %s отданы пользователю %s", req.VaultID, ident.SubjectID)
	writeSuccess(w, map[string]any{"vault": vault})
}
