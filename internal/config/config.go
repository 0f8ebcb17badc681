package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the client configuration loaded from the environment.
type Config struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIKey     string `mapstructure:"stripe_api_key"`
	APIBaseURL string `mapstructure:"stripe_api_base_url"`
	APIVersion string `mapstructure:"stripe_api_version"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
	MaxRetries         int           `mapstructure:"http_max_retries"`
	RetryWaitMillis    int64         `mapstructure:"http_retry_wait_ms"`
	RetryWait          time.Duration `mapstructure:"-"`

	CacheType            string        `mapstructure:"cache_type"`
	CachePath            string        `mapstructure:"cache_path"`
	CacheTTLSeconds      int64         `mapstructure:"cache_ttl_seconds"`
	CacheCleanupSeconds  int64         `mapstructure:"cache_cleanup_interval_seconds"`
	CacheTTL             time.Duration `mapstructure:"-"`
	CacheCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, with an optional
// configs/.env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	// An explicit default makes viper consider the key, so AutomaticEnv
	// can resolve it during Unmarshal.
	v.SetDefault("stripe_api_key", "")
	v.SetDefault("stripe_api_base_url", "https://api.stripe.com/v1")
	v.SetDefault("stripe_api_version", "")
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("http_max_retries", 2)
	v.SetDefault("http_retry_wait_ms", 500)
	v.SetDefault("cache_type", "none")
	v.SetDefault("cache_path", "./data/responses.db")
	v.SetDefault("cache_ttl_seconds", int64((5*time.Minute)/time.Second))
	v.SetDefault("cache_cleanup_interval_seconds", int64(time.Hour/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("stripe_api_key is required")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid http_max_retries (must not be negative)")
	}
	if cfg.RetryWaitMillis <= 0 {
		return nil, fmt.Errorf("invalid http_retry_wait_ms (must be positive milliseconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	cfg.RetryWait = time.Duration(cfg.RetryWaitMillis) * time.Millisecond

	if cfg.CacheTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid cache_ttl_seconds (must be positive seconds)")
	}
	if cfg.CacheCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid cache_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.CacheTTL = time.Duration(cfg.CacheTTLSeconds) * time.Second
	cfg.CacheCleanupInterval = time.Duration(cfg.CacheCleanupSeconds) * time.Second

	return &cfg, nil
}
