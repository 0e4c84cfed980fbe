package flags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config holds the environment configuration for a remote-backed flag cache.
type Config struct {
	Endpoint string        `env:"FEATURE_FLAGS_ENDPOINT,required"`        // Endpoint is the URL serving GET /feature-flags.
	Timeout  time.Duration `env:"FEATURE_FLAGS_TIMEOUT" envDefault:"10s"` // Timeout bounds a single fetch round trip.
	TTL      time.Duration `env:"FEATURE_FLAGS_TTL" envDefault:"5m"`      // TTL is the snapshot freshness window.
}

// NewCacheFromConfig creates a Cache with an HTTP fetcher built from the
// provided Config. Additional options are applied after the config-derived
// ones and take precedence.
func NewCacheFromConfig(cfg Config, registry *Registry, opts ...Option) *Cache {
	fetcher := NewHTTPFetcher(cfg.Endpoint, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))

	configOpts := make([]Option, 0, 1+len(opts))
	if cfg.TTL > 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}
	configOpts = append(configOpts, opts...)

	return NewCache(registry, fetcher, configOpts...)
}

// HTTPFetcher fetches flag values from a JSON endpoint returning an object
// of the shape {"flag-id": true, ...}. The response may be partial and may
// carry extraneous keys; values are coerced to booleans so a drifting
// server cannot poison the cache with mistyped values.
type HTTPFetcher struct {
	client   *http.Client
	endpoint string
}

// FetcherOption configures the HTTP fetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient sets the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) FetcherOption {
	if client == nil {
		panic("WithHTTPClient: nil client")
	}
	return func(f *HTTPFetcher) { f.client = client }
}

// NewHTTPFetcher creates a Fetcher for the given endpoint URL.
func NewHTTPFetcher(endpoint string, opts ...FetcherOption) *HTTPFetcher {
	if endpoint == "" {
		panic("flags: NewHTTPFetcher requires an endpoint")
	}

	f := &HTTPFetcher{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET against the endpoint and decodes the flag object.
func (f *HTTPFetcher) Fetch(ctx context.Context) (map[string]bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(ErrFetchFailed, ErrUnexpectedStatus,
			fmt.Errorf("status %d", resp.StatusCode))
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	values := make(map[string]bool, len(raw))
	for id, v := range raw {
		values[id] = coerceBool(v)
	}
	return values, nil
}

// coerceBool applies truthiness coercion to a decoded JSON value.
func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != "" && val != "false" && val != "0"
	default:
		return false
	}
}
