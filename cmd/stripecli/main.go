package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hassan/stripity-stripe/internal/config"
	"github.com/hassan/stripity-stripe/internal/logger"
	"github.com/hassan/stripity-stripe/pkg/request"
	"github.com/hassan/stripity-stripe/pkg/stripe"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stripecli failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) != 2 {
		return fmt.Errorf("usage: stripecli <charge|customer|coupon|refund> <id>")
	}
	resource, id := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := stripe.New(stripe.Config{
		APIKey:               cfg.APIKey,
		BaseURL:              cfg.APIBaseURL,
		APIVersion:           cfg.APIVersion,
		Timeout:              cfg.HTTPTimeout,
		MaxRetries:           cfg.MaxRetries,
		RetryWait:            cfg.RetryWait,
		CacheType:            cfg.CacheType,
		CachePath:            cfg.CachePath,
		CacheTTL:             cfg.CacheTTL,
		CacheCleanupInterval: cfg.CacheCleanupInterval,
	}, log)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}
	defer client.Close()

	var result any
	switch resource {
	case "charge":
		result, err = client.Charges.Retrieve(ctx, id, request.Options{})
	case "customer":
		result, err = client.Customers.Retrieve(ctx, id, request.Options{})
	case "coupon":
		result, err = client.Coupons.Retrieve(ctx, id, request.Options{})
	case "refund":
		result, err = client.Refunds.Retrieve(ctx, id, request.Options{})
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return fmt.Errorf("retrieve %s %s: %w", resource, id, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
