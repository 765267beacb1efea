package config_test

import (
	"testing"
	"time"

	"github.com/iho/papertrade/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.JWTSecret != "" {
		t.Fatalf("expected JWT secret default to be empty, got %q", cfg.JWTSecret)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.StartingBalance != "100000" {
		t.Fatalf("expected default starting balance 100000, got %s", cfg.StartingBalance)
	}

	if cfg.TrustClientPrice {
		t.Fatalf("expected client prices to be distrusted by default")
	}

	if len(cfg.FeedSymbols) == 0 {
		t.Fatalf("expected default feed symbols")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("STARTING_BALANCE", "5000")
	t.Setenv("TRUST_CLIENT_PRICE", "true")
	t.Setenv("FEED_SYMBOLS", "AAPL,TCS")
	t.Setenv("FEED_INTERVAL", "500ms")
	t.Setenv("JWT_SECRET", "top-secret")
	t.Setenv("AUTH_ENABLED", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected database URL override, got %s", cfg.DatabaseURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.StartingBalance != "5000" {
		t.Fatalf("expected starting balance override, got %s", cfg.StartingBalance)
	}

	if !cfg.TrustClientPrice {
		t.Fatalf("expected trust-client-price override")
	}

	if len(cfg.FeedSymbols) != 2 || cfg.FeedSymbols[0] != "AAPL" {
		t.Fatalf("expected feed symbols override, got %v", cfg.FeedSymbols)
	}

	if cfg.FeedInterval != 500*time.Millisecond {
		t.Fatalf("expected feed interval override, got %s", cfg.FeedInterval)
	}

	if !cfg.AuthEnabled || cfg.JWTSecret != "top-secret" {
		t.Fatalf("expected auth overrides, got enabled=%v secret=%q", cfg.AuthEnabled, cfg.JWTSecret)
	}
}
