package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	// DatabaseURL enables the Postgres report archive when non-empty.
	DatabaseURL string

	// RedisURL enables the L2 result cache when non-empty.
	RedisURL string

	// ActivityDBDir overrides the directory of the local SQLite
	// activity log. Empty = $HOME/.go_ats.
	ActivityDBDir string

	// MaxPreviewBytes caps the text preview returned by resume_scan.
	MaxPreviewBytes int

	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (score, atsserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.MaxPreviewBytes <= 0 {
		c.MaxPreviewBytes = 500
	}
	cfg = c
	Cfg = &cfg
}
