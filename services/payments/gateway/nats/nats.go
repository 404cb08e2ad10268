package gateway_nats

import (
	"context"
	"fmt"

	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	natspkg "github.com/quetzapay/quetzapay/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the payments service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPaymentEvent publishes a payment lifecycle event to the given subject
func (g *NATSGateway) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	if err := g.client.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	logger.Debug("Published payment event",
		logger.String("subject", subject),
		logger.String("transaction_id", event.TransactionID.String()),
		logger.String("status", string(event.Status)))

	return nil
}
