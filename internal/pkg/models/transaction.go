package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus enumerates the lifecycle states of a transaction.
// Transitions are forward-only: pending may move to completed, failed or
// expired; terminal states never change again.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionExpired   TransactionStatus = "expired"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionFailed || s == TransactionExpired
}

// Transaction represents a locally persisted payment record. Amount is stored
// in minor units of the asset (e.g. cents), matching the scale declared by the
// merchant wallet.
type Transaction struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	MerchantID       uuid.UUID         `json:"merchant_id" db:"merchant_id"`
	Amount           int64             `json:"amount" db:"amount"`
	Currency         string            `json:"currency" db:"currency"`
	Status           TransactionStatus `json:"status" db:"status"`
	PaymentReference string            `json:"payment_reference" db:"payment_reference"`
	IsOffline        bool              `json:"is_offline" db:"is_offline"`
	Synced           bool              `json:"synced" db:"synced"`
	ExpiresAt        time.Time         `json:"expires_at" db:"expires_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}
