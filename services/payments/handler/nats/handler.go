package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	natspkg "github.com/quetzapay/quetzapay/internal/pkg/nats"
	wspkg "github.com/quetzapay/quetzapay/internal/pkg/websocket"
)

// NatsHandler consumes payment lifecycle events and forwards them to
// connected merchant dashboards
type NatsHandler struct {
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(natsClient *natspkg.Client, wsManager *wspkg.Manager) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// InitConsumers subscribes to the payment lifecycle subjects
func (h *NatsHandler) InitConsumers() error {
	subjects := map[string]string{
		constants.SubjectPaymentCompleted: constants.EventPaymentCompleted,
		constants.SubjectPaymentFailed:    constants.EventPaymentFailed,
		constants.SubjectPaymentExpired:   constants.EventPaymentExpired,
	}

	for subject, wsEvent := range subjects {
		event := wsEvent
		sub, err := h.natsClient.Subscribe(subject, func(msg *nats.Msg) {
			if err := h.handlePaymentEvent(msg.Data, event); err != nil {
				logger.Error("Error handling payment event",
					logger.String("subject", msg.Subject),
					logger.Err(err))
			}
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	return nil
}

// handlePaymentEvent pushes a lifecycle event to the merchant's dashboard.
// Delivery is best-effort: a merchant without an open connection is skipped.
func (h *NatsHandler) handlePaymentEvent(msg []byte, wsEvent string) error {
	var event models.PaymentEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	h.wsManager.NotifyClient(event.MerchantID.String(), wsEvent, event)
	return nil
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}
