// Package transport performs the signed HTTP calls the request core
// dispatches. It owns base-URL handling, authentication headers, the
// form-encoded wire format, retry policy, and classification of API-level
// failures.
package transport

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hassan/stripity-stripe/pkg/request"
)

// DefaultBaseURL is the live API root, version prefix included.
const DefaultBaseURL = "https://api.stripe.com/v1"

const (
	defaultTimeout   = 30 * time.Second
	defaultRetryWait = 500 * time.Millisecond
)

// Cache stores successful GET response bodies keyed by endpoint and query.
// Implementations decide retention; a nil Cache disables caching entirely.
type Cache interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, body []byte) error
}

// Config holds the transport-level settings shared by every call. Per-call
// request.Options values override the key, version and account fields.
type Config struct {
	BaseURL    string
	APIKey     string
	APIVersion string
	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration
}

// Stripe implements request.Transport over a resty client.
type Stripe struct {
	client *resty.Client
	cfg    Config
	cache  Cache
	log    *zap.SugaredLogger
}

// Statically ensure Stripe satisfies the core's transport contract.
var _ request.Transport = (*Stripe)(nil)

// New builds a Stripe transport. Retries cover network errors, 429s and
// 5xxs, with the configured count and wait; cache and log may be nil.
func New(cfg Config, cache Cache, log *zap.SugaredLogger) *Stripe {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultRetryWait
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	if cfg.MaxRetries > 0 {
		client.
			SetRetryCount(cfg.MaxRetries).
			SetRetryWaitTime(cfg.RetryWait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				return r.StatusCode() == 429 || r.StatusCode() >= 500
			})
	}

	return &Stripe{client: client, cfg: cfg, cache: cache, log: log}
}

// Do executes one HTTP call. GET and DELETE params travel as query
// parameters, everything else as a form-encoded body; POST calls get an
// Idempotency-Key header, generated when the caller did not provide one.
func (s *Stripe) Do(ctx context.Context, method request.Method, endpoint string, params request.Params, headers map[string]string, opts request.Options) (request.Response, error) {
	apiKey := firstNonEmpty(opts.APIKey, s.cfg.APIKey)
	if apiKey == "" {
		return nil, &RequestError{Method: method, Endpoint: endpoint, Err: ErrMissingAPIKey}
	}

	form := encodeParams(params)

	req := s.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey)

	if v := firstNonEmpty(opts.APIVersion, s.cfg.APIVersion); v != "" {
		req.SetHeader("Stripe-Version", v)
	}
	if opts.StripeAccount != "" {
		req.SetHeader("Stripe-Account", opts.StripeAccount)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	var cacheKey string
	switch method {
	case request.Get, request.Delete:
		req.SetQueryParamsFromValues(form)
		if method == request.Get && s.cache != nil {
			cacheKey = cacheKeyFor(endpoint, form)
			if body, ok, err := s.cache.Get(cacheKey); err != nil {
				s.log.Warnw("response cache read failed", "key", cacheKey, "error", err)
			} else if ok {
				s.log.Debugw("response cache hit", "key", cacheKey)
				return cachedResponse{body: body}, nil
			}
		}
	default:
		req.SetFormDataFromValues(form)
		if method == request.Post {
			key := opts.IdempotencyKey
			if key == "" {
				key = uuid.NewString()
			}
			req.SetHeader("Idempotency-Key", key)
		}
	}

	resp, err := req.Execute(string(method), "/"+strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	if resp.IsError() {
		return nil, apiErrorFrom(resp)
	}

	if cacheKey != "" {
		if err := s.cache.Put(cacheKey, resp.Body()); err != nil {
			s.log.Warnw("response cache write failed", "key", cacheKey, "error", err)
		}
	}
	return &restyResponse{resp: resp}, nil
}

// cacheKeyFor derives a stable cache key from the endpoint and its encoded
// query.
func cacheKeyFor(endpoint string, form url.Values) string {
	if len(form) == 0 {
		return endpoint
	}
	return endpoint + "?" + form.Encode()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// restyResponse adapts resty.Response to request.Response.
type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) Body() []byte    { return r.resp.Body() }
func (r *restyResponse) StatusCode() int { return r.resp.StatusCode() }

// cachedResponse replays a cached body as a successful reply.
type cachedResponse struct {
	body []byte
}

func (c cachedResponse) Body() []byte    { return c.body }
func (c cachedResponse) StatusCode() int { return 200 }
