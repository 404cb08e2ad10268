package merchants

import (
	"context"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quetzapay/quetzapay/services/merchants MerchantUC

// MerchantUC represents the merchant usecase interface
type MerchantUC interface {
	RegisterMerchant(ctx context.Context, reg *models.MerchantRegistration) (*models.MerchantCredentials, error)
	GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	SetMerchantActive(ctx context.Context, id uuid.UUID, active bool) error

	// authentication
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}
