package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

// gateway state reported for an incoming payment that can no longer complete
const incomingStateFailed = "failed"

// CheckStatus reconciles a transaction against the Open Payments gateway and
// reports its current state. Terminal transactions are returned as stored
// without any remote call, so repeated polling is idempotent and cheap.
func (u *PaymentUC) CheckStatus(ctx context.Context, transactionID uuid.UUID) (*models.PaymentStatusResponse, error) {
	tx, err := u.transactionRepo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status.IsTerminal() {
		return statusResponse(tx, false), nil
	}

	// Offline placeholders have no remote counterpart until synced; report
	// pending and leave the record untouched.
	if tx.IsOffline {
		return statusResponse(tx, false), nil
	}

	if time.Now().After(tx.ExpiresAt) {
		if err := u.expireTransaction(ctx, tx); err != nil {
			return nil, err
		}
		return statusResponse(tx, false), nil
	}

	remote, err := u.paymentGW.GetIncomingPayment(ctx, tx.PaymentReference)
	if err != nil {
		// Report the last known state with a stale marker; the record is
		// not mutated on a failed lookup.
		logger.Warn("Gateway status lookup failed",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return statusResponse(tx, true), nil
	}

	switch {
	case remote.Completed:
		if err := u.completeTransaction(ctx, tx); err != nil {
			return nil, err
		}
	case remote.State == incomingStateFailed:
		if err := u.failTransaction(ctx, tx); err != nil {
			return nil, err
		}
	}

	resp := statusResponse(tx, false)
	resp.ReceivedAmount = remote.ReceivedAmount
	return resp, nil
}

// completeTransaction promotes tx to completed. The store performs a
// compare-and-set on the pending status, so when several callers race only
// the winner stamps completed_at and publishes the completion event.
func (u *PaymentUC) completeTransaction(ctx context.Context, tx *models.Transaction) error {
	won, err := u.transactionRepo.MarkCompleted(ctx, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction completed: %w", err)
	}

	if !won {
		// Another caller won the transition; report what the store holds
		// instead of assuming it completed.
		return u.refreshTransaction(ctx, tx)
	}

	now := time.Now()
	tx.Status = models.TransactionCompleted
	tx.Synced = true
	tx.CompletedAt = &now

	logger.Info("Transaction completed",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("merchant_id", tx.MerchantID.String()),
		logger.Int64("amount", tx.Amount))

	u.publishEvent(ctx, constants.SubjectPaymentCompleted, tx)
	return nil
}

func (u *PaymentUC) failTransaction(ctx context.Context, tx *models.Transaction) error {
	won, err := u.transactionRepo.MarkTerminal(ctx, tx.ID, models.TransactionFailed)
	if err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}

	if !won {
		return u.refreshTransaction(ctx, tx)
	}

	tx.Status = models.TransactionFailed
	tx.Synced = true

	u.publishEvent(ctx, constants.SubjectPaymentFailed, tx)
	return nil
}

func (u *PaymentUC) expireTransaction(ctx context.Context, tx *models.Transaction) error {
	won, err := u.transactionRepo.MarkTerminal(ctx, tx.ID, models.TransactionExpired)
	if err != nil {
		return fmt.Errorf("failed to mark transaction expired: %w", err)
	}

	if !won {
		return u.refreshTransaction(ctx, tx)
	}

	tx.Status = models.TransactionExpired
	tx.Synced = true

	logger.Info("Transaction expired",
		logger.String("transaction_id", tx.ID.String()))
	u.publishEvent(ctx, constants.SubjectPaymentExpired, tx)
	return nil
}

// refreshTransaction replaces the in-memory record with the stored row. Used
// after a lost status transition so the caller reports the state and
// timestamps the winner actually persisted.
func (u *PaymentUC) refreshTransaction(ctx context.Context, tx *models.Transaction) error {
	stored, err := u.transactionRepo.GetTransactionByID(ctx, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to reload transaction: %w", err)
	}
	*tx = *stored
	return nil
}

// publishEvent pushes a lifecycle event to the message bus. Delivery feeds
// the dashboard activity stream, so a publish failure is logged but never
// fails the reconciliation itself.
func (u *PaymentUC) publishEvent(ctx context.Context, subject string, tx *models.Transaction) {
	event := &models.PaymentEvent{
		TransactionID: tx.ID,
		MerchantID:    tx.MerchantID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        tx.Status,
		Timestamp:     time.Now(),
	}

	if err := u.paymentGW.PublishPaymentEvent(ctx, subject, event); err != nil {
		logger.Error("Failed to publish payment event",
			logger.String("subject", subject),
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
	}
}

func statusResponse(tx *models.Transaction, stale bool) *models.PaymentStatusResponse {
	return &models.PaymentStatusResponse{
		TransactionID: tx.ID,
		Status:        tx.Status,
		Completed:     tx.Status == models.TransactionCompleted,
		Synced:        tx.Synced,
		Stale:         stale,
		CompletedAt:   tx.CompletedAt,
	}
}
