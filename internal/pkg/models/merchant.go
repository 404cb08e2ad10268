package models

import (
	"time"

	"github.com/google/uuid"
)

// Merchant represents a registered point-of-sale merchant
type Merchant struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	BusinessName  string    `json:"business_name" db:"business_name"`
	WalletAddress string    `json:"wallet_address" db:"wallet_address"`
	APISecretHash string    `json:"-" db:"api_secret_hash"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// MerchantRegistration represents a merchant sign-up request
type MerchantRegistration struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	BusinessName  string `json:"business_name"`
	WalletAddress string `json:"wallet_address"`
}

// MerchantCredentials represents the one-time credentials returned on
// registration. The secret is only ever available here; the store keeps a
// bcrypt hash.
type MerchantCredentials struct {
	Merchant  Merchant `json:"merchant"`
	APISecret string   `json:"api_secret"`
}

// LoginRequest represents a merchant dashboard login
type LoginRequest struct {
	Email     string `json:"email"`
	APISecret string `json:"api_secret"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token      string `json:"token"`
	MerchantID string `json:"merchant_id"`
	ExpiresAt  int64  `json:"expires_at"`
}
