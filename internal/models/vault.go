package models

import "time"

// Статусы хранилища (Vault). Статус сообщает сам агент хранилища,
// по умолчанию в БД записывается StatusUnknown.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusUnknown = "unknown"
	// StatusNotFound не хранится в БД: подставляется в списке хранилищ
	// пользователя, если запись Vault исчезла, а индекс остался.
	StatusNotFound = "not found"
)

// Vault представляет зарегистрированное хранилище (удалённый агент).
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
type Vault struct {
	ID        string    `db:"vault_id" json:"id"`
	VaultName string    `db:"vault_name" json:"vault_name"`
	TunnelURL string    `db:"tunnel_url" json:"tunnel_url"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Users и Requests заполняются отдельными запросами, не колонки.
	Users    []string         `json:"users"`
	Requests []PendingRequest `json:"requests,omitempty"`
}

// VaultSummary - элемент списка хранилищ пользователя: запись обратного
// индекса user_vaults, дополненная актуальным статусом из записи Vault.
type VaultSummary struct {
	ID        string `db:"vault_id" json:"id"`
	VaultName string `db:"vault_name" json:"vault_name"`
	Status    string `db:"status" json:"status"`
}
