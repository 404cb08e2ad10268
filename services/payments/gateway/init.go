package gateway

import (
	"context"

	"github.com/quetzapay/quetzapay/internal/pkg/database"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	natspkg "github.com/quetzapay/quetzapay/internal/pkg/nats"
	gateway_http "github.com/quetzapay/quetzapay/services/payments/gateway/http"
	gateway_nats "github.com/quetzapay/quetzapay/services/payments/gateway/nats"
)

// PaymentGW handles payment gateway operations
type PaymentGW struct {
	httpGateway *gateway_http.OpenPaymentsClient
	natsGateway *gateway_nats.NATSGateway
}

// NewPaymentGW creates a new gateway instance with the Open Payments HTTP
// client and the NATS publisher
func NewPaymentGW(natsClient *natspkg.Client, redisClient *database.RedisClient, cfg *models.Config, zlog *logger.ZapLogger) *PaymentGW {
	return &PaymentGW{
		httpGateway: gateway_http.NewOpenPaymentsClient(cfg, redisClient, zlog),
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// Bootstrap resolves the merchant wallet at startup
func (g *PaymentGW) Bootstrap(ctx context.Context) error {
	return g.httpGateway.Bootstrap(ctx)
}

// CreateIncomingPayment delegates to the Open Payments client
func (g *PaymentGW) CreateIncomingPayment(ctx context.Context, amount int64, currency string) (*models.IncomingPayment, error) {
	return g.httpGateway.CreateIncomingPayment(ctx, amount, currency)
}

// GetIncomingPayment delegates to the Open Payments client
func (g *PaymentGW) GetIncomingPayment(ctx context.Context, reference string) (*models.IncomingPaymentStatus, error) {
	return g.httpGateway.GetIncomingPayment(ctx, reference)
}

// GetWalletInfo delegates to the Open Payments client
func (g *PaymentGW) GetWalletInfo(ctx context.Context) (*models.WalletInfo, error) {
	return g.httpGateway.GetWalletInfo(ctx)
}

// PublishPaymentEvent delegates to the NATS gateway
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	return g.natsGateway.PublishPaymentEvent(ctx, subject, event)
}
