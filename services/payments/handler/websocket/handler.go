package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/converter"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	wspkg "github.com/quetzapay/quetzapay/internal/pkg/websocket"
	"github.com/quetzapay/quetzapay/services/payments"
)

// WebSocketHandler handles merchant dashboard WebSocket connections
type WebSocketHandler struct {
	paymentUC payments.PaymentUC
	manager   *wspkg.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(paymentUC payments.PaymentUC, manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		paymentUC: paymentUC,
		manager:   manager,
	}
}

// HandleWebSocket upgrades the dashboard connection and serves it until the
// client disconnects
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.MerchantID)

	logger.Info("Dashboard client connected",
		logger.String("merchant_id", client.MerchantID))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Dashboard connection closed unexpectedly",
					logger.String("merchant_id", client.MerchantID),
					logger.Err(err))
			} else {
				logger.Info("Dashboard client disconnected",
					logger.String("merchant_id", client.MerchantID))
			}
			return nil
		}

		if err := h.handleMessage(client, conn, &msg); err != nil {
			logger.Error("Error handling dashboard message",
				logger.String("merchant_id", client.MerchantID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// handleMessage dispatches a dashboard message by event type
func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, conn *websocket.Conn, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(conn, constants.EventPong, json.RawMessage(`{}`))
	case constants.EventSyncRequest:
		return h.handleSyncRequest(client, conn)
	default:
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

// handleSyncRequest runs the offline reconciliation pass on behalf of the
// dashboard and reports how many transactions were settled
func (h *WebSocketHandler) handleSyncRequest(client *models.WebSocketClient, conn *websocket.Conn) error {
	merchantID := converter.StrToUUID(client.MerchantID)

	count, err := h.paymentUC.SyncOfflineTransactions(context.Background(), merchantID)
	if err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorSyncFailed, "Sync failed")
	}

	return h.manager.SendMessage(conn, constants.EventSyncResult, map[string]int{"synced_count": count})
}
