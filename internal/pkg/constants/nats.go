package constants

// NATS Subjects
const (
	// Payment lifecycle events
	SubjectPaymentCompleted = "payments.completed"
	SubjectPaymentFailed    = "payments.failed"
	SubjectPaymentExpired   = "payments.expired"
)
