package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment creation modes reported back to the point of sale
const (
	PaymentModeOnline  = "online"
	PaymentModeOffline = "offline"
)

// PaymentRequest represents a request to create a payment
type PaymentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentResponse represents the response to a payment creation request
type PaymentResponse struct {
	TransactionID    uuid.UUID         `json:"transaction_id"`
	PaymentReference string            `json:"payment_reference"`
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency"`
	Status           TransactionStatus `json:"status"`
	Mode             string            `json:"mode"`
	ExpiresAt        time.Time         `json:"expires_at"`
}

// PaymentStatusResponse represents the reconciled state of a transaction
type PaymentStatusResponse struct {
	TransactionID  uuid.UUID         `json:"transaction_id"`
	Status         TransactionStatus `json:"status"`
	Completed      bool              `json:"completed"`
	Synced         bool              `json:"synced"`
	Stale          bool              `json:"stale,omitempty"`
	ReceivedAmount int64             `json:"received_amount,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

// IncomingPayment represents an incoming payment resource minted by the
// Open Payments gateway
type IncomingPayment struct {
	Reference string    `json:"reference"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IncomingPaymentStatus represents the gateway's authoritative view of an
// incoming payment
type IncomingPaymentStatus struct {
	Completed      bool   `json:"completed"`
	State          string `json:"state"`
	ReceivedAmount int64  `json:"received_amount"`
}

// WalletInfo holds the metadata of a wallet address as declared by the
// gateway
type WalletInfo struct {
	URL            string `json:"url"`
	PublicName     string `json:"public_name"`
	AssetCode      string `json:"asset_code"`
	AssetScale     int    `json:"asset_scale"`
	AuthServer     string `json:"auth_server"`
	ResourceServer string `json:"resource_server"`
}

// PaymentEvent is published on the message bus when a transaction reaches a
// terminal state
type PaymentEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	MerchantID    uuid.UUID         `json:"merchant_id"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}
