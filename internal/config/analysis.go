package config

import (
	"github.com/andrew-solarstorm/go-packages/common"
)

type AnalysisConfig struct {
	// CacheDBPath is the path to the BoltDB file for upstream response caching.
	// Default: "./data/lens-cache.db"
	CacheDBPath string

	// CacheEnabled controls whether upstream responses are cached to disk.
	// Default: true
	CacheEnabled bool

	// RoutesCacheTTL is how long cached route responses stay valid (seconds).
	// Terminal transaction statuses are cached without expiry.
	// Default: 30
	RoutesCacheTTL int

	// StatusLRUSize bounds the in-memory status cache in front of Bolt.
	// Default: 2048
	StatusLRUSize int
}

func (c *AnalysisConfig) Key() string {
	return ANALYSIS_CONFIG_KEY
}

func (c *AnalysisConfig) Load() error {
	c.CacheDBPath = common.GetEnvOrDefault("ANALYSIS_CACHE_DB_PATH", "./data/lens-cache.db")
	c.CacheEnabled = common.GetEnvOrDefault("ANALYSIS_CACHE_ENABLED", "true") == "true"
	c.RoutesCacheTTL = common.GetEnvOrDefaultInt("ANALYSIS_ROUTES_CACHE_TTL", 30)
	c.StatusLRUSize = common.GetEnvOrDefaultInt("ANALYSIS_STATUS_LRU_SIZE", 2048)
	return nil
}

func (c *AnalysisConfig) Validate() error {
	return nil
}
