package constants

// Redis key formats
const (
	// Payments Service
	KeyWalletInfo = "wallet:info:%s" // Format: wallet:info:{wallet_url}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{merchant_id}
)
