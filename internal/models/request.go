package models

import "time"

// Статусы заявки на вступление в хранилище.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Действия над заявкой.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// PendingRequest представляет приглашение пользователя в хранилище.
// Ключ записи - пара (vault_id, subject_id).
type PendingRequest struct {
	VaultID        string    `db:"vault_id" json:"vault_id"`
	SubjectID      string    `db:"subject_id" json:"subject_id"`
	OwnerSubjectID string    `db:"owner_subject_id" json:"owner"`
	VaultName      string    `db:"vault_name" json:"vault_name"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
