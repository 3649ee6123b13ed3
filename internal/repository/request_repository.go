package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/codebyjossaya/vt-backend/internal/models"
)

// RequestRepository определяет методы для работы с заявками на
// вступление в хранилище. Accept - одна транзакция, внутри которой
// обновляются все три представления: статус заявки, состав участников
// и обратный индекс.
type RequestRepository interface {
	CreateRequest(ctx context.Context, req *models.PendingRequest) error
	GetPendingRequest(ctx context.Context, vaultID, subjectID string) (*models.PendingRequest, error)
	ListPendingRequests(ctx context.Context, subjectID string) ([]models.PendingRequest, error)
	AcceptRequest(ctx context.Context, vaultID, subjectID string) error
	RejectRequest(ctx context.Context, vaultID, subjectID string) error
}

// postgresRequestRepository реализует RequestRepository для PostgreSQL.
type postgresRequestRepository struct {
	db *sqlx.DB
}

// NewPostgresRequestRepository создает новый экземпляр репозитория заявок.
func NewPostgresRequestRepository(db *sqlx.DB) RequestRepository {
	return &postgresRequestRepository{db: db}
}

// CreateRequest создает заявку со статусом pending. Повторное
// приглашение того же пользователя обновляет существующую запись.
func (r *postgresRequestRepository) CreateRequest(ctx context.Context, req *models.PendingRequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vault_requests (vault_id, subject_id, owner_subject_id, vault_name, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (vault_id, subject_id)
		 DO UPDATE SET owner_subject_id = EXCLUDED.owner_subject_id,
		               vault_name = EXCLUDED.vault_name,
		               status = EXCLUDED.status,
		               updated_at = now()`,
		req.VaultID, req.SubjectID, req.OwnerSubjectID, req.VaultName, models.RequestPending)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка создания заявки (%s, %s): %v", req.VaultID, req.SubjectID, err)
		return fmt.Errorf("ошибка создания заявки: %w", err)
	}

	log.Printf("[RequestRepo] Создана заявка пользователя %s в хранилище %s", req.SubjectID, req.VaultID)
	return nil
}

// GetPendingRequest находит необработанную заявку по ключу (vault_id, subject_id).
func (r *postgresRequestRepository) GetPendingRequest(ctx context.Context, vaultID, subjectID string) (*models.PendingRequest, error) {
	var req models.PendingRequest
	err := r.db.GetContext(ctx, &req,
		`SELECT vault_id, subject_id, owner_subject_id, vault_name, status, created_at, updated_at
		 FROM vault_requests
		 WHERE vault_id = $1 AND subject_id = $2 AND status = $3`,
		vaultID, subjectID, models.RequestPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[RequestRepo] Необработанная заявка (%s, %s) не найдена", vaultID, subjectID)
			return nil, ErrRequestNotFound
		}
		log.Printf("[RequestRepo] Ошибка поиска заявки (%s, %s): %v", vaultID, subjectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение заявки: %w", err)
	}
	return &req, nil
}

// ListPendingRequests возвращает необработанные заявки пользователя.
// Отсутствие заявок - пустой список, не ошибка.
func (r *postgresRequestRepository) ListPendingRequests(ctx context.Context, subjectID string) ([]models.PendingRequest, error) {
	requests := []models.PendingRequest{}
	err := r.db.SelectContext(ctx, &requests,
		`SELECT vault_id, subject_id, owner_subject_id, vault_name, status, created_at, updated_at
		 FROM vault_requests
		 WHERE subject_id = $1 AND status = $2
		 ORDER BY created_at`,
		subjectID, models.RequestPending)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка получения заявок пользователя %s: %v", subjectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса списка заявок: %w", err)
	}

	log.Printf("[RequestRepo] У пользователя %s найдено заявок: %d", subjectID, len(requests))
	return requests, nil
}

// AcceptRequest принимает заявку: помечает ее accepted, добавляет
// пользователя в участники и записывает обратный индекс. Все в одной
// транзакции, строка хранилища блокируется FOR UPDATE.
func (r *postgresRequestRepository) AcceptRequest(ctx context.Context, vaultID, subjectID string) error {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var vaultName string
		err := tx.GetContext(ctx, &vaultName,
			`SELECT vault_name FROM vaults WHERE vault_id = $1 FOR UPDATE`, vaultID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVaultNotFound
			}
			return fmt.Errorf("ошибка поиска хранилища: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE vault_requests SET status = $3, updated_at = now()
			 WHERE vault_id = $1 AND subject_id = $2 AND status = $4`,
			vaultID, subjectID, models.RequestAccepted, models.RequestPending)
		if err != nil {
			return fmt.Errorf("ошибка обновления статуса заявки: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
		}
		if affected == 0 {
			return ErrRequestNotFound
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO vault_users (vault_id, subject_id)
			 VALUES ($1, $2)
			 ON CONFLICT (vault_id, subject_id) DO NOTHING`,
			vaultID, subjectID)
		if err != nil {
			return fmt.Errorf("ошибка добавления участника: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_vaults (subject_id, vault_id, vault_name)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (subject_id, vault_id)
			 DO UPDATE SET vault_name = EXCLUDED.vault_name`,
			subjectID, vaultID, vaultName)
		if err != nil {
			return fmt.Errorf("ошибка записи обратного индекса: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrVaultNotFound) && !errors.Is(err, ErrRequestNotFound) {
			log.Printf("[RequestRepo] Ошибка принятия заявки (%s, %s): %v", vaultID, subjectID, err)
		}
		return err
	}

	log.Printf("[RequestRepo] Заявка пользователя %s в хранилище %s принята", subjectID, vaultID)
	return nil
}

// RejectRequest отклоняет заявку: помечает ее rejected, состав
// участников не меняется.
func (r *postgresRequestRepository) RejectRequest(ctx context.Context, vaultID, subjectID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vault_requests SET status = $3, updated_at = now()
		 WHERE vault_id = $1 AND subject_id = $2 AND status = $4`,
		vaultID, subjectID, models.RequestRejected, models.RequestPending)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка отклонения заявки (%s, %s): %v", vaultID, subjectID, err)
		return fmt.Errorf("ошибка обновления статуса заявки: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	log.Printf("[RequestRepo] Заявка пользователя %s в хранилище %s отклонена", subjectID, vaultID)
	return nil
}

// inTx выполняет fn в транзакции с commit/rollback.
func (r *postgresRequestRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("[RequestRepo] Ошибка отката транзакции: %v", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}
