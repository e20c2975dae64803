package redis

// Config holds Redis connection and leaderboard settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// KeyPrefix namespaces every key, so several servers can share a
	// database.
	KeyPrefix string

	// MaxEntries caps each game's ranking; lower entries are dropped.
	// Zero keeps everything.
	MaxEntries int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		KeyPrefix:    "blockfall",
		MaxEntries:   100,
	}
}
