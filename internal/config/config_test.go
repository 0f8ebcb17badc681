package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIKey != "sk_test_123" {
		t.Fatalf("APIKey = %q", cfg.APIKey)
	}
	if cfg.APIBaseURL != "https://api.stripe.com/v1" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.RetryWait != 500*time.Millisecond {
		t.Fatalf("RetryWait = %v", cfg.RetryWait)
	}
	if cfg.CacheType != "none" {
		t.Fatalf("CacheType = %q", cfg.CacheType)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("CACHE_TYPE", "bbolt")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.CacheType != "bbolt" || cfg.CacheTTL != time.Minute {
		t.Fatalf("cache settings = %q %v", cfg.CacheType, cfg.CacheTTL)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error without an API key")
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a zero timeout")
	}
}
