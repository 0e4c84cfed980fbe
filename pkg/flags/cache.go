package flags

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched snapshot stays fresh.
const DefaultTTL = 5 * time.Minute

// Fetcher retrieves the raw remote flag values. The response may omit
// registered flags and may carry unknown ids; the cache reconciles both
// against the registry.
type Fetcher interface {
	Fetch(ctx context.Context) (map[string]bool, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (map[string]bool, error)

func (f FetcherFunc) Fetch(ctx context.Context) (map[string]bool, error) {
	return f(ctx)
}

// Cache holds a single flag snapshot with a freshness timestamp.
//
// Lifecycle: empty until the first Get triggers a fetch; fresh until the TTL
// elapses from the last successful fetch; stale afterwards, when the next
// Get re-fetches; empty again after Invalidate. A failed fetch never touches
// the slot: the caller receives the registry defaults and the next Get
// retries the network, favoring correctness-by-retry over serving stale
// data.
//
// Concurrent Get calls that find the slot empty or stale each run their own
// fetch; in-flight fetches are not deduplicated. The slot itself is
// mutex-guarded, and the TTL is measured from the completion timestamp of
// whichever fetch stored last.
type Cache struct {
	registry *Registry
	fetcher  Fetcher
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger

	mu        sync.Mutex
	snapshot  Snapshot
	fetchedAt time.Time
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL overrides the snapshot freshness window.
func WithTTL(d time.Duration) Option {
	if d <= 0 {
		panic("WithTTL: duration must be > 0")
	}
	return func(c *Cache) { c.ttl = d }
}

// WithClock injects a time source, enabling deterministic TTL tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock: nil clock")
	}
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger used for fetch failure diagnostics.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic("WithLogger: nil logger")
	}
	return func(c *Cache) { c.log = log }
}

// NewCache creates a flag cache over the given registry and fetcher.
func NewCache(registry *Registry, fetcher Fetcher, opts ...Option) *Cache {
	if registry == nil {
		panic("flags: NewCache requires a registry")
	}
	if fetcher == nil {
		panic("flags: NewCache requires a fetcher")
	}

	c := &Cache{
		registry: registry,
		fetcher:  fetcher,
		ttl:      DefaultTTL,
		now:      time.Now,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the current flag snapshot, fetching from the remote source
// when the slot is empty or stale. It never fails: on fetch error the
// registry defaults are returned and the slot is left unchanged. The
// returned snapshot is shared; treat it as read-only.
func (c *Cache) Get(ctx context.Context) Snapshot {
	c.mu.Lock()
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot
	}
	c.mu.Unlock()

	remote, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "feature flag fetch failed, serving defaults",
			slog.Any("error", err))
		return c.registry.Defaults()
	}

	snapshot := c.reconcile(remote)

	c.mu.Lock()
	c.snapshot = snapshot
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return snapshot
}

// IsEnabled reports whether one flag is on in the current snapshot,
// fetching if needed.
func (c *Cache) IsEnabled(ctx context.Context, id FlagID) bool {
	return c.Get(ctx).Enabled(id)
}

// Invalidate clears the slot; the next Get fetches again.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Defaults returns a fresh snapshot of registry default values. Pure; does
// not touch the slot.
func (c *Cache) Defaults() Snapshot {
	return c.registry.Defaults()
}

// reconcile builds a complete snapshot: registry defaults overwritten by
// remote entries whose id is registered. Unknown remote ids are dropped.
func (c *Cache) reconcile(remote map[string]bool) Snapshot {
	snapshot := c.registry.Defaults()
	for id, value := range remote {
		if c.registry.Contains(FlagID(id)) {
			snapshot[FlagID(id)] = value
		}
	}
	return snapshot
}
