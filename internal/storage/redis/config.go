package redis

import "time"

// Config holds Redis connection and expiry settings
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string

	// Connection pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL bounds how long a session and its draft state live.
	// Draft state shares the session's TTL so it dies with the session
	SessionTTL time.Duration

	// DatasetTTL bounds how long a fetched dataset is kept before a
	// refresh is forced
	DatasetTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis storage
func DefaultConfig() Config {
	return Config{
		PoolSize:     10,
		MinIdleConns: 2,
		SessionTTL:   24 * time.Hour,
		DatasetTTL:   30 * time.Minute,
	}
}
