package config_test

import (
	"testing"

	"opphub/match-service/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "REDIS_URL", "CATALOG_FIXTURES",
		"REFRESH_INTERVAL_HOURS", "CACHE_TTL_MINUTES", "MATCH_PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_RequiresACatalogSource(t *testing.T) {
	clearEnv(t)
	if _, err := config.Load(); err == nil {
		t.Error("Load() with no catalog source should fail")
	}
}

func TestLoad_FixturesOnlyIsEnough(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_FIXTURES", "./fixtures/catalog.yaml")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CatalogFixtures != "./fixtures/catalog.yaml" {
		t.Errorf("CatalogFixtures = %q", cfg.CatalogFixtures)
	}
	if cfg.Port != "8083" {
		t.Errorf("default port = %q, want 8083", cfg.Port)
	}
	if cfg.RefreshHours != 6 {
		t.Errorf("default refresh = %d, want 6", cfg.RefreshHours)
	}
	if cfg.CacheTTLMinutes != 15 {
		t.Errorf("default cache TTL = %d, want 15", cfg.CacheTTLMinutes)
	}
}

func TestLoad_InvalidRefreshInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/opphub")

	for _, bad := range []string{"0", "-2", "six"} {
		t.Setenv("REFRESH_INTERVAL_HOURS", bad)
		if _, err := config.Load(); err == nil {
			t.Errorf("Load() with REFRESH_INTERVAL_HOURS=%q should fail", bad)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/opphub")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("MATCH_PORT", "9000")
	t.Setenv("REFRESH_INTERVAL_HOURS", "12")
	t.Setenv("CACHE_TTL_MINUTES", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9000" || cfg.RefreshHours != 12 || cfg.CacheTTLMinutes != 30 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.RedisURL == "" {
		t.Error("RedisURL should be set")
	}
}
