package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

// ListTransactions returns the merchant's transaction history, optionally
// filtered by status, newest first.
func (u *PaymentUC) ListTransactions(ctx context.Context, merchantID uuid.UUID, status string, limit, offset int) ([]*models.Transaction, error) {
	if limit <= 0 || limit > u.cfg.Payments.TransactionPageSize {
		limit = u.cfg.Payments.TransactionPageSize
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := u.transactionRepo.ListTransactions(ctx, merchantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// GetWalletInfo returns the metadata of the configured merchant wallet. The
// gateway layer caches the lookup, so dashboard polling stays cheap.
func (u *PaymentUC) GetWalletInfo(ctx context.Context) (*models.WalletInfo, error) {
	info, err := u.paymentGW.GetWalletInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet info: %w", err)
	}
	return info, nil
}
