// Package config loads and validates environment variables at startup.
// Fail-fast: if the configuration is unusable, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the match service.
type Config struct {
	Port            string
	DatabaseURL     string // optional — fixtures are used when unset
	RedisURL        string // optional — recommendation cache is skipped when unset
	CatalogFixtures string // path to a YAML seed catalog
	RefreshHours    int    // how often the catalog snapshot is reloaded
	CacheTTLMinutes int    // recommendation cache TTL
}

// Load reads environment variables and returns a validated Config.
// The catalog must come from somewhere: DATABASE_URL or CATALOG_FIXTURES.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	fixtures := os.Getenv("CATALOG_FIXTURES")
	if dbURL == "" && fixtures == "" {
		return nil, fmt.Errorf("either DATABASE_URL or CATALOG_FIXTURES is required")
	}

	refresh := 6
	if s := os.Getenv("REFRESH_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		refresh = v
	}

	ttl := 15
	if s := os.Getenv("CACHE_TTL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_MINUTES must be a positive integer, got %q", s)
		}
		ttl = v
	}

	port := os.Getenv("MATCH_PORT")
	if port == "" {
		port = "8083"
	}

	return &Config{
		Port:            port,
		DatabaseURL:     dbURL,
		RedisURL:        os.Getenv("REDIS_URL"),
		CatalogFixtures: fixtures,
		RefreshHours:    refresh,
		CacheTTLMinutes: ttl,
	}, nil
}
