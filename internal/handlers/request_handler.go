package handlers

import (
	"log"
	"net/http"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/services"
)

// RequestHandler обрабатывает заявки на членство: приглашение по e-mail,
// список входящих заявок и их рассмотрение.
type RequestHandler struct {
	codec      VaultTokenCodec
	provider   identity.Provider
	membership services.MembershipService
}

// NewRequestHandler создает новый экземпляр RequestHandler.
func NewRequestHandler(codec VaultTokenCodec, provider identity.Provider, membership services.MembershipService) *RequestHandler {
	return &RequestHandler{codec: codec, provider: provider, membership: membership}
}

// AddUser создает заявку на вступление от имени хранилища: пользователь
// с указанным e-mail получает приглашение в хранилище из токена.
func (h *RequestHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	log.Printf("[RequestHandler] Получен запрос на приглашение пользователя")

	var req models.AddUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.VaultToken == "" || req.UserEmail == "" {
		writeError(w, missingField("требуются токен хранилища и e-mail пользователя"))
		return
	}

	claims, err := h.codec.Verify(req.VaultToken)
	if err != nil {
		log.Printf("[RequestHandler] Ошибка проверки токена хранилища: %v", err)
		writeError(w, err)
		return
	}

	err = h.membership.InviteUser(r.Context(), claims.VaultID, claims.OwnerSubjectID, req.UserEmail)
	if err != nil {
		log.Printf("[RequestHandler] Ошибка приглашения %s в хранилище %s: %v", req.UserEmail, claims.VaultID, err)
		writeError(w, err)
		return
	}

	log.Printf("[RequestHandler] Создана заявка для %s в хранилище %s", req.UserEmail, claims.VaultID)
	writeSuccess(w, map[string]any{"message": "заявка на вступление создана"})
}

// Requests возвращает пользователю его входящие заявки на вступление.
func (h *RequestHandler) Requests(w http.ResponseWriter, r *http.Request) {
	log.Printf("[RequestHandler] Получен запрос на список заявок")

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
		log.Printf("[RequestHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	requests, err := h.membership.ListRequests(r.Context(), ident.SubjectID)
	if err != nil {
		log.Printf("[RequestHandler] Ошибка получения заявок %s: %v", ident.SubjectID, err)
		writeError(w, err)
		return
	}

	log.Printf("[RequestHandler] Пользователю %s отдано %d заявок", ident.SubjectID, len(requests))
	writeSuccess(w, map[string]any{"requests": requests})
}

// HandleRequest принимает или отклоняет заявку от имени приглашенного.
func (h *RequestHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	log.Printf("[RequestHandler] Получен запрос на рассмотрение заявки")

	var req models.HandleRequestRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserToken == "" || req.VaultID == "" || req.Action == "" {
		writeError(w, missingField("требуются токен пользователя, идентификатор хранилища и действие"))
		return
	}

	ident, err := h.provider.VerifyIDToken(r.Context(), req.UserToken)
	if err != nil {
		log.Printf("[RequestHandler] Ошибка проверки токена пользователя: %v", err)
		writeError(w, err)
		return
	}

	err = h.membership.ResolveRequest(r.Context(), req.VaultID, ident.SubjectID, req.Action)
	if err != nil {
		log.Printf("[RequestHandler] Ошибка рассмотрения заявки %s/%s: %v", req.VaultID, ident.SubjectID, err)
		writeError(w, err)
		return
	}

	log.Printf("[RequestHandler] Заявка %s/%s рассмотрена: %s", req.VaultID, ident.SubjectID, req.Action)
	writeSuccess(w, map[string]any{"message": "заявка рассмотрена"})
}
