package usecase

import (
	"go.uber.org/atomic"

	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/payments"
)

type PaymentUC struct {
	transactionRepo payments.TransactionRepo
	paymentGW       payments.PaymentGW
	cfg             *models.Config

	// syncing guards the offline sync pass: at most one pass runs per
	// process at any time
	syncing atomic.Bool
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	transactionRepo payments.TransactionRepo,
	paymentGW payments.PaymentGW,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		transactionRepo: transactionRepo,
		paymentGW:       paymentGW,
		cfg:             cfg,
	}
}
