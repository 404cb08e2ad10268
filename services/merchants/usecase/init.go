package usecase

import (
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/merchants"
)

type MerchantUC struct {
	merchantRepo merchants.MerchantRepo
	cfg          *models.Config
}

// NewMerchantUC creates a new merchant usecase instance
func NewMerchantUC(
	merchantRepo merchants.MerchantRepo,
	cfg *models.Config,
) *MerchantUC {
	return &MerchantUC{
		merchantRepo: merchantRepo,
		cfg:          cfg,
	}
}
