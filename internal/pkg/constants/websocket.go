package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Payment events pushed to the merchant dashboard
	EventPaymentCompleted = "payment_completed"
	EventPaymentFailed    = "payment_failed"
	EventPaymentExpired   = "payment_expired"

	// Dashboard-initiated events
	EventSyncRequest = "sync_request"
	EventSyncResult  = "sync_result"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
	ErrorSyncFailed    = "sync_failed"
)

// ErrorSeverity categorizes how much detail a client may see
type ErrorSeverity int

const (
	ErrorSeverityServer ErrorSeverity = iota
	ErrorSeverityClient
	ErrorSeveritySecurity
)
