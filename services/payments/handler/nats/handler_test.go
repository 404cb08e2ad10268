package nats

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

// MockNotification represents a notification sent to a client
type MockNotification struct {
	MerchantID string
	Event      string
	Data       interface{}
}

// WebSocketNotifier interface for testing - only includes what we need
type WebSocketNotifier interface {
	NotifyClient(merchantID string, event string, data interface{})
}

// MockWebSocketManager implements WebSocketNotifier for testing
type MockWebSocketManager struct {
	notifications []MockNotification
}

func NewMockWebSocketManager() *MockWebSocketManager {
	return &MockWebSocketManager{
		notifications: []MockNotification{},
	}
}

func (m *MockWebSocketManager) NotifyClient(merchantID string, event string, data interface{}) {
	m.notifications = append(m.notifications, MockNotification{
		MerchantID: merchantID,
		Event:      event,
		Data:       data,
	})
}

// testNatsHandler mirrors NatsHandler's event handling against the mock
type testNatsHandler struct {
	wsManager *MockWebSocketManager
}

func (h *testNatsHandler) handlePaymentEvent(msg []byte, wsEvent string) error {
	var event models.PaymentEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	h.wsManager.NotifyClient(event.MerchantID.String(), wsEvent, event)
	return nil
}

func TestHandlePaymentEvent_Completed(t *testing.T) {
	// Arrange
	merchantID := uuid.New()
	event := models.PaymentEvent{
		TransactionID: uuid.New(),
		MerchantID:    merchantID,
		Amount:        2500,
		Currency:      "USD",
		Status:        models.TransactionCompleted,
		Timestamp:     time.Now(),
	}

	msgData, err := json.Marshal(event)
	assert.NoError(t, err)

	mockWS := NewMockWebSocketManager()
	handler := &testNatsHandler{wsManager: mockWS}

	// Act
	err = handler.handlePaymentEvent(msgData, constants.EventPaymentCompleted)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, mockWS.notifications, 1)

	notification := mockWS.notifications[0]
	assert.Equal(t, merchantID.String(), notification.MerchantID)
	assert.Equal(t, constants.EventPaymentCompleted, notification.Event)

	delivered, ok := notification.Data.(models.PaymentEvent)
	assert.True(t, ok)
	assert.Equal(t, event.TransactionID, delivered.TransactionID)
	assert.Equal(t, int64(2500), delivered.Amount)
	assert.Equal(t, models.TransactionCompleted, delivered.Status)
}

func TestHandlePaymentEvent_Expired(t *testing.T) {
	// Arrange
	merchantID := uuid.New()
	event := models.PaymentEvent{
		TransactionID: uuid.New(),
		MerchantID:    merchantID,
		Amount:        1000,
		Currency:      "USD",
		Status:        models.TransactionExpired,
		Timestamp:     time.Now(),
	}

	msgData, err := json.Marshal(event)
	assert.NoError(t, err)

	mockWS := NewMockWebSocketManager()
	handler := &testNatsHandler{wsManager: mockWS}

	// Act
	err = handler.handlePaymentEvent(msgData, constants.EventPaymentExpired)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, mockWS.notifications, 1)
	assert.Equal(t, constants.EventPaymentExpired, mockWS.notifications[0].Event)
}

func TestHandlePaymentEvent_InvalidJSON(t *testing.T) {
	// Arrange
	mockWS := NewMockWebSocketManager()
	handler := &testNatsHandler{wsManager: mockWS}

	// Act
	err := handler.handlePaymentEvent([]byte(`{invalid`), constants.EventPaymentCompleted)

	// Assert
	assert.Error(t, err)
	assert.Empty(t, mockWS.notifications)
}
