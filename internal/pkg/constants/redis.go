package constants

// Redis key formats
const (
	// Market Service
	KeySeatPrice = "market:price:%s" // Format: market:price:{tenant_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
