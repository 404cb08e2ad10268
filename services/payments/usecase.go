package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quetzapay/quetzapay/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// payment lifecycle
	CreatePayment(ctx context.Context, merchantID uuid.UUID, req *models.PaymentRequest) (*models.PaymentResponse, error)
	CheckStatus(ctx context.Context, transactionID uuid.UUID) (*models.PaymentStatusResponse, error)

	// offline reconciliation
	SyncOfflineTransactions(ctx context.Context, merchantID uuid.UUID) (int, error)

	// dashboard support
	ListTransactions(ctx context.Context, merchantID uuid.UUID, status string, limit, offset int) ([]*models.Transaction, error)
	GetWalletInfo(ctx context.Context) (*models.WalletInfo, error)
}
