package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/codebyjossaya/vt-backend/internal/identity"
	"github.com/codebyjossaya/vt-backend/internal/models"
	"github.com/codebyjossaya/vt-backend/internal/repository"
)

// Кастомные ошибки сервиса.
var (
	ErrInvalidInput     = errors.New("некорректные входные данные")
	ErrVaultNotFound    = errors.New("хранилище не найдено")
	ErrRequestNotFound  = errors.New("заявка не найдена")
	ErrUserNotFound     = errors.New("пользователь не найден")
	ErrNotAuthorized    = errors.New("пользователь не состоит в хранилище")
	ErrAlreadyMember    = errors.New("пользователь уже состоит в хранилище")
	ErrStoreUnavailable = errors.New("хранилище данных недоступно")
)

// MembershipService определяет интерфейс модели членства: хранилища,
// их участники, обратный индекс пользователя и заявки на вступление.
type MembershipService interface {
	RegisterVault(ctx context.Context, vaultID, ownerSubjectID, vaultName, tunnelURL string) error
	UnregisterVault(ctx context.Context, vaultID, subjectID string) error
	SetVaultStatus(ctx context.Context, vaultID, status string) error
	ListUserVaults(ctx context.Context, subjectID string) ([]models.VaultSummary, error)
	GetVault(ctx context.Context, vaultID, requesterSubjectID string) (*models.Vault, error)
	VerifyMembership(ctx context.Context, vaultID, subjectID string) (bool, error)
	ListVaultUsers(ctx context.Context, vaultID string) ([]identity.Identity, error)
	InviteUser(ctx context.Context, vaultID, inviterSubjectID, inviteeEmail string) error
	ListRequests(ctx context.Context, subjectID string) ([]models.PendingRequest, error)
	ResolveRequest(ctx context.Context, vaultID, subjectID, action string) error
}

// Убедимся, что membershipService удовлетворяет интерфейсу MembershipService.
var _ MembershipService = (*membershipService)(nil)

type membershipService struct {
	vaultRepo   repository.VaultRepository
	requestRepo repository.RequestRepository
	provider    identity.Provider
}

// NewMembershipService создает новый экземпляр сервиса членства.
func NewMembershipService(
	vaultRepo repository.VaultRepository,
	requestRepo repository.RequestRepository,
	provider identity.Provider,
) MembershipService {
	return &membershipService{
		vaultRepo:   vaultRepo,
		requestRepo: requestRepo,
		provider:    provider,
	}
}

// RegisterVault регистрирует хранилище за владельцем: создает запись
// при первой регистрации, при повторной обновляет адрес туннеля и
// добавляет владельца в участники, если его там нет.
func (s *membershipService) RegisterVault(ctx context.Context, vaultID, ownerSubjectID, vaultName, tunnelURL string) error {
	if vaultName == "" || tunnelURL == "" {
		log.Printf("[MembershipService] Отказ в регистрации %s: пустое имя или адрес туннеля", vaultID)
		return fmt.Errorf("%w: требуются имя хранилища и адрес туннеля", ErrInvalidInput)
	}

	if err := s.vaultRepo.RegisterVault(ctx, vaultID, ownerSubjectID, vaultName, tunnelURL); err != nil {
		return storeError(err)
	}

	log.Printf("[MembershipService] Хранилище %s (%q) зарегистрировано владельцем %s", vaultID, vaultName, ownerSubjectID)
	return nil
}

// UnregisterVault убирает пользователя из хранилища; с последним
// участником удаляется и само хранилище.
func (s *membershipService) UnregisterVault(ctx context.Context, vaultID, subjectID string) error {
	deleted, err := s.vaultRepo.UnregisterVault(ctx, vaultID, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return ErrVaultNotFound
		}
		return storeError(err)
	}

	if deleted {
		log.Printf("[MembershipService] Хранилище %s удалено после выхода %s", vaultID, subjectID)
	} else {
		log.Printf("[MembershipService] Пользователь %s вышел из хранилища %s", subjectID, vaultID)
	}
	return nil
}

// SetVaultStatus обновляет статус хранилища. Несуществующее хранилище -
// явная ошибка: тихий no-op маскировал бы рассинхронизацию агента.
func (s *membershipService) SetVaultStatus(ctx context.Context, vaultID, status string) error {
	switch status {
	case models.StatusOnline, models.StatusOffline, models.StatusUnknown:
	default:
		log.Printf("[MembershipService] Недопустимый статус %q для хранилища %s", status, vaultID)
		return fmt.Errorf("%w: недопустимый статус %q", ErrInvalidInput, status)
	}

	if err := s.vaultRepo.SetStatus(ctx, vaultID, status); err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return ErrVaultNotFound
		}
		return storeError(err)
	}
	return nil
}

// ListUserVaults возвращает список хранилищ пользователя с актуальными
// статусами. Расхождение индекса с записями Vault деградирует отдельные
// элементы ("not found"), но не проваливает вызов.
func (s *membershipService) ListUserVaults(ctx context.Context, subjectID string) ([]models.VaultSummary, error) {
	summaries, err := s.vaultRepo.ListUserVaults(ctx, subjectID)
	if err != nil {
		return nil, storeError(err)
	}
	return summaries, nil
}

// GetVault возвращает полную запись хранилища участнику.
// Не участнику - ErrNotAuthorized.
func (s *membershipService) GetVault(ctx context.Context, vaultID, requesterSubjectID string) (*models.Vault, error) {
	vault, err := s.vaultRepo.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return nil, ErrVaultNotFound
		}
		return nil, storeError(err)
	}

	if !slices.Contains(vault.Users, requesterSubjectID) {
		log.Printf("[MembershipService] Пользователь %s не авторизован в хранилище %s", requesterSubjectID, vaultID)
		return nil, ErrNotAuthorized
	}

	return vault, nil
}

// VerifyMembership сообщает хранилищу, состоит ли пользователь в нем.
// Используется агентом для допуска входящих подключений.
func (s *membershipService) VerifyMembership(ctx context.Context, vaultID, subjectID string) (bool, error) {
	member, err := s.vaultRepo.IsMember(ctx, vaultID, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return false, ErrVaultNotFound
		}
		return false, storeError(err)
	}
	return member, nil
}

// ListVaultUsers возвращает профили участников хранилища, полученные
// от провайдера личностей.
func (s *membershipService) ListVaultUsers(ctx context.Context, vaultID string) ([]identity.Identity, error) {
	vault, err := s.vaultRepo.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return nil, ErrVaultNotFound
		}
		return nil, storeError(err)
	}

	users := make([]identity.Identity, 0, len(vault.Users))
	for _, subjectID := range vault.Users {
		ident, err := s.provider.GetUser(ctx, subjectID)
		if err != nil {
			log.Printf("[MembershipService] Ошибка получения профиля %s: %v", subjectID, err)
			return nil, fmt.Errorf("ошибка получения профиля участника %s: %w", subjectID, err)
		}
		users = append(users, *ident)
	}

	log.Printf("[MembershipService] Получены профили %d участников хранилища %s", len(users), vaultID)
	return users, nil
}

// InviteUser приглашает пользователя в хранилище по email: email
// разрешается в subject_id через провайдера, для участника приглашение
// запрещено, иначе создается (или обновляется) заявка pending.
func (s *membershipService) InviteUser(ctx context.Context, vaultID, inviterSubjectID, inviteeEmail string) error {
	if inviteeEmail == "" {
		return fmt.Errorf("%w: требуется email приглашаемого", ErrInvalidInput)
	}

	invitee, err := s.provider.GetUserByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			log.Printf("[MembershipService] Приглашение в %s: email %s не зарегистрирован", vaultID, inviteeEmail)
			return ErrUserNotFound
		}
		return fmt.Errorf("ошибка поиска пользователя по email: %w", err)
	}

	vault, err := s.vaultRepo.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return ErrVaultNotFound
		}
		return storeError(err)
	}

	if slices.Contains(vault.Users, invitee.SubjectID) {
		log.Printf("[MembershipService] Пользователь %s уже состоит в хранилище %s", invitee.SubjectID, vaultID)
		return ErrAlreadyMember
	}

	req := &models.PendingRequest{
		VaultID:        vaultID,
		SubjectID:      invitee.SubjectID,
		OwnerSubjectID: inviterSubjectID,
		VaultName:      vault.VaultName,
	}
	if err = s.requestRepo.CreateRequest(ctx, req); err != nil {
		return storeError(err)
	}

	log.Printf("[MembershipService] Пользователь %s (%s) приглашен в хранилище %s", invitee.SubjectID, inviteeEmail, vaultID)
	return nil
}

// ListRequests возвращает необработанные приглашения пользователя.
func (s *membershipService) ListRequests(ctx context.Context, subjectID string) ([]models.PendingRequest, error) {
	requests, err := s.requestRepo.ListPendingRequests(ctx, subjectID)
	if err != nil {
		return nil, storeError(err)
	}
	return requests, nil
}

// ResolveRequest принимает или отклоняет приглашение. Порядок проверок:
// действие, существование хранилища, существование необработанной
// заявки, членство. Повторное разрешение уже принятой заявки дает
// ErrRequestNotFound, а не ErrAlreadyMember.
func (s *membershipService) ResolveRequest(ctx context.Context, vaultID, subjectID, action string) error {
	if action != models.ActionAccept && action != models.ActionReject {
		log.Printf("[MembershipService] Недопустимое действие %q над заявкой (%s, %s)", action, vaultID, subjectID)
		return fmt.Errorf("%w: действие должно быть accept или reject", ErrInvalidInput)
	}

	member, err := s.vaultRepo.IsMember(ctx, vaultID, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrVaultNotFound) {
			return ErrVaultNotFound
		}
		return storeError(err)
	}

	if _, err = s.requestRepo.GetPendingRequest(ctx, vaultID, subjectID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return storeError(err)
	}

	if member {
		return ErrAlreadyMember
	}

	switch action {
	case models.ActionAccept:
		err = s.requestRepo.AcceptRequest(ctx, vaultID, subjectID)
	case models.ActionReject:
		err = s.requestRepo.RejectRequest(ctx, vaultID, subjectID)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVaultNotFound):
			return ErrVaultNotFound
		case errors.Is(err, repository.ErrRequestNotFound):
			return ErrRequestNotFound
		default:
			return storeError(err)
		}
	}

	log.Printf("[MembershipService] Заявка пользователя %s в хранилище %s обработана: %s", subjectID, vaultID, action)
	return nil
}

// storeError помечает ошибку ввода-вывода хранилища данных, сохраняя
// исходную причину в цепочке.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
