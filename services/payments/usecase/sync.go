package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
)

// offlineReferencePrefix marks placeholder references minted while the
// gateway was unreachable. They have no remote counterpart to resolve.
const offlineReferencePrefix = "offline-"

// SyncOfflineTransactions reconciles the merchant's unsynced offline
// transactions against the gateway and returns how many reached a terminal
// state. At most one pass runs per process; a concurrent call is a no-op.
func (u *PaymentUC) SyncOfflineTransactions(ctx context.Context, merchantID uuid.UUID) (int, error) {
	if !u.syncing.CompareAndSwap(false, true) {
		logger.Debug("Sync pass already running, skipping",
			logger.String("merchant_id", merchantID.String()))
		return 0, nil
	}
	defer u.syncing.Store(false)

	txs, err := u.transactionRepo.ListUnsyncedOffline(ctx, merchantID)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, tx := range txs {
		// Placeholder references were never registered with the gateway,
		// so there is nothing remote to look up. They expire locally.
		if strings.HasPrefix(tx.PaymentReference, offlineReferencePrefix) {
			if time.Now().After(tx.ExpiresAt) {
				if err := u.expireTransaction(ctx, tx); err != nil {
					logger.Error("Failed to expire offline transaction",
						logger.String("transaction_id", tx.ID.String()),
						logger.Err(err))
					continue
				}
				synced++
			}
			continue
		}

		remote, err := u.paymentGW.GetIncomingPayment(ctx, tx.PaymentReference)
		if err != nil {
			logger.Warn("Skipping transaction, gateway lookup failed",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
			continue
		}

		switch {
		case remote.Completed:
			if err := u.completeTransaction(ctx, tx); err != nil {
				logger.Error("Failed to complete transaction during sync",
					logger.String("transaction_id", tx.ID.String()),
					logger.Err(err))
				continue
			}
			synced++
		case remote.State == incomingStateFailed:
			if err := u.failTransaction(ctx, tx); err != nil {
				logger.Error("Failed to fail transaction during sync",
					logger.String("transaction_id", tx.ID.String()),
					logger.Err(err))
				continue
			}
			synced++
		case time.Now().After(tx.ExpiresAt):
			if err := u.expireTransaction(ctx, tx); err != nil {
				continue
			}
			synced++
		}
	}

	logger.Info("Offline sync pass finished",
		logger.String("merchant_id", merchantID.String()),
		logger.Int("candidates", len(txs)),
		logger.Int("synced", synced))

	return synced, nil
}
