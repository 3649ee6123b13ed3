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

// Кастомные ошибки репозитория.
var (
	ErrVaultNotFound   = errors.New("хранилище не найдено")
	ErrRequestNotFound = errors.New("заявка не найдена")
)

// VaultRepository определяет методы для работы с записями хранилищ,
// их составом участников и обратным индексом user_vaults.
//
// Каждая мутация - одна транзакция: запись Vault и обратный индекс
// никогда не изменяются по отдельности, а строка хранилища при изменении
// состава участников блокируется FOR UPDATE. Это закрывает гонку
// конкурентных register/unregister одного vault_id, отмеченную в §5.
type VaultRepository interface {
	RegisterVault(ctx context.Context, vaultID, ownerSubjectID, vaultName, tunnelURL string) error
	// UnregisterVault возвращает true, если хранилище удалено целиком
	// (вышел последний участник).
	UnregisterVault(ctx context.Context, vaultID, subjectID string) (bool, error)
	SetStatus(ctx context.Context, vaultID, status string) error
	GetVault(ctx context.Context, vaultID string) (*models.Vault, error)
	ListUserVaults(ctx context.Context, subjectID string) ([]models.VaultSummary, error)
	IsMember(ctx context.Context, vaultID, subjectID string) (bool, error)
}

// postgresVaultRepository реализует VaultRepository для PostgreSQL.
type postgresVaultRepository struct {
	db *sqlx.DB
}

// NewPostgresVaultRepository создает новый экземпляр репозитория хранилищ.
func NewPostgresVaultRepository(db *sqlx.DB) VaultRepository {
	return &postgresVaultRepository{db: db}
}

// RegisterVault создает хранилище при первой регистрации владельца либо
// обновляет tunnel_url при перерегистрации; владелец добавляется в состав
// участников, запись обратного индекса всегда перезаписывается.
// Повторная регистрация той же парой (vault_id, владелец) идемпотентна.
func (r *postgresVaultRepository) RegisterVault(ctx context.Context, vaultID, ownerSubjectID, vaultName, tunnelURL string) error {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		// Имя хранилища фиксируется при первой регистрации, перерегистрация
		// заменяет только адрес туннеля.
		_, err := tx.ExecContext(ctx,
			`INSERT INTO vaults (vault_id, vault_name, tunnel_url)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (vault_id)
			 DO UPDATE SET tunnel_url = EXCLUDED.tunnel_url, updated_at = now()`,
			vaultID, vaultName, tunnelURL)
		if err != nil {
			return fmt.Errorf("ошибка записи хранилища: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO vault_users (vault_id, subject_id)
			 VALUES ($1, $2)
			 ON CONFLICT (vault_id, subject_id) DO NOTHING`,
			vaultID, ownerSubjectID)
		if err != nil {
			return fmt.Errorf("ошибка добавления участника: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_vaults (subject_id, vault_id, vault_name)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (subject_id, vault_id)
			 DO UPDATE SET vault_name = EXCLUDED.vault_name`,
			ownerSubjectID, vaultID, vaultName)
		if err != nil {
			return fmt.Errorf("ошибка записи обратного индекса: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[VaultRepo] Ошибка регистрации хранилища %s: %v", vaultID, err)
		return err
	}

	log.Printf("[VaultRepo] Хранилище %s зарегистрировано для владельца %s", vaultID, ownerSubjectID)
	return nil
}

// UnregisterVault удаляет участника из хранилища и его запись обратного
// индекса. Если участников не осталось, хранилище удаляется целиком,
// заявки каскадно удаляются внешним ключом.
func (r *postgresVaultRepository) UnregisterVault(ctx context.Context, vaultID, subjectID string) (bool, error) {
	var deleted bool
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM vaults WHERE vault_id = $1 FOR UPDATE)`, vaultID)
		if err != nil {
			return fmt.Errorf("ошибка поиска хранилища: %w", err)
		}
		if !exists {
			return ErrVaultNotFound
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM user_vaults WHERE subject_id = $1 AND vault_id = $2`,
			subjectID, vaultID)
		if err != nil {
			return fmt.Errorf("ошибка удаления из обратного индекса: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM vault_users WHERE vault_id = $1 AND subject_id = $2`,
			vaultID, subjectID)
		if err != nil {
			return fmt.Errorf("ошибка удаления участника: %w", err)
		}

		var remaining int
		err = tx.GetContext(ctx, &remaining,
			`SELECT COUNT(*) FROM vault_users WHERE vault_id = $1`, vaultID)
		if err != nil {
			return fmt.Errorf("ошибка подсчета участников: %w", err)
		}

		if remaining == 0 {
			// Хранилище без участников не существует: удаляем запись,
			// заявки уходят каскадом.
			_, err = tx.ExecContext(ctx, `DELETE FROM vaults WHERE vault_id = $1`, vaultID)
			if err != nil {
				return fmt.Errorf("ошибка удаления хранилища: %w", err)
			}
			deleted = true
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrVaultNotFound) {
			log.Printf("[VaultRepo] Ошибка удаления участника %s из хранилища %s: %v", subjectID, vaultID, err)
		}
		return false, err
	}

	if deleted {
		log.Printf("[VaultRepo] Хранилище %s удалено: вышел последний участник %s", vaultID, subjectID)
	} else {
		log.Printf("[VaultRepo] Участник %s удален из хранилища %s", subjectID, vaultID)
	}
	return deleted, nil
}

// SetStatus обновляет статус хранилища. Обновление несуществующего
// хранилища - ошибка, а не тихий no-op.
func (r *postgresVaultRepository) SetStatus(ctx context.Context, vaultID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vaults SET status = $2, updated_at = now() WHERE vault_id = $1`,
		vaultID, status)
	if err != nil {
		log.Printf("[VaultRepo] Ошибка обновления статуса хранилища %s: %v", vaultID, err)
		return fmt.Errorf("ошибка обновления статуса: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if affected == 0 {
		log.Printf("[VaultRepo] Попытка обновить статус несуществующего хранилища %s", vaultID)
		return ErrVaultNotFound
	}

	log.Printf("[VaultRepo] Статус хранилища %s обновлен на %q", vaultID, status)
	return nil
}

// GetVault возвращает полную запись хранилища: атрибуты, состав
// участников и заявки.
func (r *postgresVaultRepository) GetVault(ctx context.Context, vaultID string) (*models.Vault, error) {
	var vault models.Vault
	err := r.db.GetContext(ctx, &vault,
		`SELECT vault_id, vault_name, tunnel_url, status, created_at, updated_at
		 FROM vaults WHERE vault_id = $1`, vaultID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[VaultRepo] Хранилище %s не найдено", vaultID)
			return nil, ErrVaultNotFound
		}
		log.Printf("[VaultRepo] Ошибка поиска хранилища %s: %v", vaultID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение хранилища: %w", err)
	}

	err = r.db.SelectContext(ctx, &vault.Users,
		`SELECT subject_id FROM vault_users WHERE vault_id = $1 ORDER BY subject_id`, vaultID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения участников хранилища: %w", err)
	}

	err = r.db.SelectContext(ctx, &vault.Requests,
		`SELECT vault_id, subject_id, owner_subject_id, vault_name, status, created_at, updated_at
		 FROM vault_requests WHERE vault_id = $1 ORDER BY created_at`, vaultID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заявок хранилища: %w", err)
	}

	return &vault, nil
}

// ListUserVaults возвращает записи обратного индекса пользователя,
// дополненные статусом из авторитетной записи Vault. Индекс и запись
// могут разойтись: для исчезнувшего хранилища подставляется "not found",
// вызов при этом не проваливается.
func (r *postgresVaultRepository) ListUserVaults(ctx context.Context, subjectID string) ([]models.VaultSummary, error) {
	summaries := []models.VaultSummary{}
	err := r.db.SelectContext(ctx, &summaries,
		`SELECT uv.vault_id, uv.vault_name, COALESCE(v.status, $2) AS status
		 FROM user_vaults uv
		 LEFT JOIN vaults v ON v.vault_id = uv.vault_id
		 WHERE uv.subject_id = $1
		 ORDER BY uv.vault_name, uv.vault_id`,
		subjectID, models.StatusNotFound)
	if err != nil {
		log.Printf("[VaultRepo] Ошибка получения списка хранилищ пользователя %s: %v", subjectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса списка хранилищ: %w", err)
	}

	log.Printf("[VaultRepo] У пользователя %s найдено хранилищ: %d", subjectID, len(summaries))
	return summaries, nil
}

// IsMember сообщает, состоит ли пользователь в хранилище.
// Отсутствие самого хранилища - ошибка ErrVaultNotFound.
func (r *postgresVaultRepository) IsMember(ctx context.Context, vaultID, subjectID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM vaults WHERE vault_id = $1)`, vaultID)
	if err != nil {
		return false, fmt.Errorf("ошибка поиска хранилища: %w", err)
	}
	if !exists {
		return false, ErrVaultNotFound
	}

	var member bool
	err = r.db.GetContext(ctx, &member,
		`SELECT EXISTS(SELECT 1 FROM vault_users WHERE vault_id = $1 AND subject_id = $2)`,
		vaultID, subjectID)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки членства: %w", err)
	}
	return member, nil
}

// inTx выполняет fn в транзакции с commit/rollback.
func (r *postgresVaultRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("[VaultRepo] Ошибка отката транзакции: %v", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}
