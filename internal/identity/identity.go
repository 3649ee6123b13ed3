// Package identity описывает контракт внешнего провайдера личностей.
//
// Сервер не выпускает и не хранит пользовательские токены: они
// короткоживущие, проверяются у провайдера на каждый запрос, а их
// ротация - целиком ответственность провайдера.
package identity

import (
	"context"
	"errors"
)

// Ошибки контракта провайдера.
var (
	// ErrInvalidIdentity - пользовательский токен не прошел проверку.
	ErrInvalidIdentity = errors.New("невалидный токен пользователя")
	// ErrUserNotFound - пользователь не найден у провайдера.
	ErrUserNotFound = errors.New("пользователь не найден у провайдера")
)

// Identity - данные личности, полученные от провайдера.
// SubjectID - опорный стабильный идентификатор, остальные поля профиля
// опциональны и никогда не сохраняются сервером.
type Identity struct {
	SubjectID string `json:"uid"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar,omitempty"`
}

// Provider определяет операции внешнего провайдера личностей,
// которые использует сервер.
type Provider interface {
	// VerifyIDToken проверяет пользовательский токен и возвращает личность.
	VerifyIDToken(ctx context.Context, rawToken string) (*Identity, error)
	// GetUser возвращает профиль пользователя по subject_id.
	GetUser(ctx context.Context, subjectID string) (*Identity, error)
	// GetUserByEmail возвращает профиль пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*Identity, error)
}
