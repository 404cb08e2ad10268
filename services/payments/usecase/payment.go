package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/payments"
)

// CreatePayment creates a payment for the merchant. It first asks the Open
// Payments gateway to mint an incoming payment; when the gateway cannot be
// reached the transaction is recorded offline with a placeholder reference so
// the sale itself never fails on connectivity.
func (u *PaymentUC) CreatePayment(ctx context.Context, merchantID uuid.UUID, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, payments.ErrInvalidAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = u.cfg.Payments.DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, payments.ErrInvalidCurrency
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     models.TransactionPending,
	}

	mode := models.PaymentModeOnline
	incoming, err := u.paymentGW.CreateIncomingPayment(ctx, req.Amount, currency)
	if err != nil {
		// Gateway trouble never fails the sale: fall back to an offline
		// record that the sync pass picks up later.
		logger.Warn("Gateway unavailable, creating offline transaction",
			logger.String("merchant_id", merchantID.String()),
			logger.Err(err))

		mode = models.PaymentModeOffline
		tx.PaymentReference = fmt.Sprintf("offline-%s-%s", merchantID, uuid.New())
		tx.IsOffline = true
		tx.Synced = false
		tx.ExpiresAt = now.Add(time.Duration(u.cfg.Payments.OfflineExpiryHours) * time.Hour)
	} else {
		tx.PaymentReference = incoming.Reference
		tx.IsOffline = false
		tx.Synced = true
		tx.ExpiresAt = incoming.ExpiresAt
		if tx.ExpiresAt.IsZero() {
			tx.ExpiresAt = now.Add(time.Duration(u.cfg.Payments.PaymentExpiryMins) * time.Minute)
		}
	}

	if err := u.transactionRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Payment created",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("merchant_id", merchantID.String()),
		logger.Int64("amount", tx.Amount),
		logger.String("mode", mode))

	return &models.PaymentResponse{
		TransactionID:    tx.ID,
		PaymentReference: tx.PaymentReference,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Status:           tx.Status,
		Mode:             mode,
		ExpiresAt:        tx.ExpiresAt,
	}, nil
}
