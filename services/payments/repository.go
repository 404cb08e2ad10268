package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quetzapay/quetzapay/services/payments TransactionRepo

// TransactionRepo defines the interface for transaction persistence
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, merchantID uuid.UUID, status string, limit, offset int) ([]*models.Transaction, error)
	ListUnsyncedOffline(ctx context.Context, merchantID uuid.UUID) ([]*models.Transaction, error)

	// MarkCompleted promotes a pending transaction to completed and stamps
	// completed_at. It reports whether this call performed the transition, so
	// the caller can publish the completion event exactly once.
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkTerminal moves a pending transaction to failed or expired. Like
	// MarkCompleted it reports whether this call won the transition.
	MarkTerminal(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (bool, error)
}
