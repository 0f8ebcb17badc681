// Package stripe assembles the transport, converter, executor and resource
// services into a ready-to-use API client.
package stripe

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hassan/stripity-stripe/internal/storage"
	"github.com/hassan/stripity-stripe/pkg/convert"
	"github.com/hassan/stripity-stripe/pkg/request"
	"github.com/hassan/stripity-stripe/pkg/resources"
	"github.com/hassan/stripity-stripe/pkg/transport"
)

// Config holds everything needed to build a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string

	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration

	// CacheType selects the GET-response cache backend: "none" (default)
	// or "bbolt".
	CacheType            string
	CachePath            string
	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration
}

// Client bundles the typed resource services over one shared executor.
type Client struct {
	Charges   *resources.Charges
	Customers *resources.Customers
	Coupons   *resources.Coupons
	Refunds   *resources.Refunds

	executor *request.Executor
	store    storage.Store
}

// New builds a Client from config. The logger may be nil for a silent
// client.
func New(cfg Config, log *zap.SugaredLogger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("stripe: an API key is required")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	store, err := storage.NewStore(cfg.CacheType, cfg.CachePath, storage.Options{
		TTL:             cfg.CacheTTL,
		CleanupInterval: cfg.CacheCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init response cache: %w", err)
	}

	tr := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		APIVersion: cfg.APIVersion,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryWait:  cfg.RetryWait,
	}, store, log)

	conv := convert.New()
	resources.RegisterObjects(conv)

	exec := request.NewExecutor(tr, conv, log)

	return &Client{
		Charges:   resources.NewCharges(exec),
		Customers: resources.NewCustomers(exec),
		Coupons:   resources.NewCoupons(exec),
		Refunds:   resources.NewRefunds(exec),
		executor:  exec,
		store:     store,
	}, nil
}

// Execute runs a hand-built spec through the client's executor, for
// endpoints without a typed service.
func (c *Client) Execute(ctx context.Context, spec request.Spec) (any, error) {
	return c.executor.Execute(ctx, spec)
}

// Close releases the response cache.
func (c *Client) Close() error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Close()
}
