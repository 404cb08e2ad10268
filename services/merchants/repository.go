package merchants

import (
	"context"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quetzapay/quetzapay/services/merchants MerchantRepo

// MerchantRepo defines the interface for merchant persistence
type MerchantRepo interface {
	CreateMerchant(ctx context.Context, merchant *models.Merchant) error
	GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	GetMerchantByEmail(ctx context.Context, email string) (*models.Merchant, error)
	SetMerchantActive(ctx context.Context, id uuid.UUID, active bool) error
}
