package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/services"
	"github.com/codebyjossaya/vt-backend/internal/token"
)

// Коды ошибок внешнего API. Исходный протокол отдавал только текст
// ошибки; структурный код добавлен, чтобы клиенты не разбирали строки.
const (
	codeInvalidInput     = "invalid_input"
	codeInvalidIdentity  = "invalid_identity"
	codeInvalidSignature = "invalid_signature"
	codeNotFound         = "not_found"
	codeNotAuthorized    = "not_authorized"
	codeAlreadyMember    = "already_member"
	codeStoreUnavailable = "store_unavailable"
	codeInternal         = "internal"
)

// writeSuccess отправляет ответ {"status": "success", ...payload}.
func writeSuccess(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[Handlers] Ошибка кодирования успешного ответа: %v", err)
	}
}

// writeError транслирует ошибку ядра в ответ
// {"status": "failed", "error": ..., "code": ...} с подходящим HTTP-статусом.
func writeError(w http.ResponseWriter, err error) {
	httpStatus, code := classify(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	body := map[string]any{
		"status": "failed",
		"error":  err.Error(),
		"code":   code,
	}
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		log.Printf("[Handlers] Ошибка кодирования ответа с ошибкой: %v", encErr)
	}
}

// classify сопоставляет ошибке ядра HTTP-статус и структурный код.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, codeInvalidInput
	case errors.Is(err, identity.ErrInvalidIdentity):
		return http.StatusUnauthorized, codeInvalidIdentity
	case errors.Is(err, token.ErrInvalidSignature):
		return http.StatusUnauthorized, codeInvalidSignature
	case errors.Is(err, services.ErrVaultNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, services.ErrNotAuthorized):
		return http.StatusForbidden, codeNotAuthorized
	case errors.Is(err, services.ErrAlreadyMember):
		return http.StatusConflict, codeAlreadyMember
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusBadGateway, codeStoreUnavailable
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// decodeBody декодирует JSON-тело запроса в dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: неверный формат запроса", services.ErrInvalidInput)
	}
	return nil
}

// missingField возвращает ошибку валидации для отсутствующего поля.
func missingField(description string) error {
	return fmt.Errorf("%w: %s", services.ErrInvalidInput, description)
}
