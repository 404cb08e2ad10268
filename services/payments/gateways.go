package payments

import (
	"context"

	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quetzapay/quetzapay/services/payments PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// Open Payments HTTP gateway
	CreateIncomingPayment(ctx context.Context, amount int64, currency string) (*models.IncomingPayment, error)
	GetIncomingPayment(ctx context.Context, reference string) (*models.IncomingPaymentStatus, error)
	GetWalletInfo(ctx context.Context) (*models.WalletInfo, error)

	// NATS gateway
	PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error
}
