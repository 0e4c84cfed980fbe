package flags_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/accesskit/pkg/flags"
)

func testRegistry(t *testing.T) *flags.Registry {
	t.Helper()

	registry, err := flags.NewRegistry(
		flags.Definition{ID: "dark-mode", Name: "Dark mode", Default: false, Category: flags.CategoryUI},
		flags.Definition{ID: "new-sidebar", Name: "New sidebar", Default: true, Category: flags.CategoryUI},
		flags.Definition{ID: "ai-insights", Name: "AI insights", Default: false, Category: flags.CategoryBeta},
	)
	require.NoError(t, err)
	return registry
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countingFetcher records calls and serves a fixed response or error.
type countingFetcher struct {
	calls    atomic.Int64
	response map[string]bool
	err      error
}

func (f *countingFetcher) Fetch(ctx context.Context) (map[string]bool, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot is total over the registry even for empty remote", func(t *testing.T) {
		fetcher := &countingFetcher{response: map[string]bool{}}
		cache := flags.NewCache(testRegistry(t), fetcher)

		snapshot := cache.Get(ctx)
		require.Len(t, snapshot, 3)
		assert.False(t, snapshot.Enabled("dark-mode"))
		assert.True(t, snapshot.Enabled("new-sidebar"))
		assert.False(t, snapshot.Enabled("ai-insights"))
	})

	t.Run("remote overrides registered ids, unknown ids dropped", func(t *testing.T) {
		fetcher := &countingFetcher{response: map[string]bool{
			"dark-mode":    true,
			"unknown-flag": true,
		}}
		cache := flags.NewCache(testRegistry(t), fetcher)

		snapshot := cache.Get(ctx)
		require.Len(t, snapshot, 3)
		assert.True(t, snapshot.Enabled("dark-mode"))
		assert.True(t, snapshot.Enabled("new-sidebar")) // default kept, remote omitted it
		assert.False(t, snapshot.Enabled("unknown-flag"))
	})

	t.Run("fresh snapshot is served without refetching", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		fetcher := &countingFetcher{response: map[string]bool{"dark-mode": true}}
		cache := flags.NewCache(testRegistry(t), fetcher, flags.WithClock(clock.Now))

		first := cache.Get(ctx)
		clock.Advance(4 * time.Minute)
		second := cache.Get(ctx)

		assert.Equal(t, int64(1), fetcher.calls.Load())
		// Identical cached object, not a rebuilt equivalent.
		assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())
		assert.True(t, second.Enabled("dark-mode"))
	})

	t.Run("expired snapshot triggers a refetch", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		fetcher := &countingFetcher{response: map[string]bool{"dark-mode": true}}
		cache := flags.NewCache(testRegistry(t), fetcher, flags.WithClock(clock.Now))

		cache.Get(ctx)
		clock.Advance(flags.DefaultTTL + time.Second)
		cache.Get(ctx)

		assert.Equal(t, int64(2), fetcher.calls.Load())
	})

	t.Run("custom TTL", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		fetcher := &countingFetcher{response: map[string]bool{}}
		cache := flags.NewCache(testRegistry(t), fetcher,
			flags.WithClock(clock.Now), flags.WithTTL(30*time.Second))

		cache.Get(ctx)
		clock.Advance(29 * time.Second)
		cache.Get(ctx)
		assert.Equal(t, int64(1), fetcher.calls.Load())

		clock.Advance(2 * time.Second)
		cache.Get(ctx)
		assert.Equal(t, int64(2), fetcher.calls.Load())
	})

	t.Run("TTL measured from fetch completion", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		slowFetcher := flags.FetcherFunc(func(ctx context.Context) (map[string]bool, error) {
			// Fetch takes one minute of fake time.
			clock.Advance(time.Minute)
			return map[string]bool{}, nil
		})
		cache := flags.NewCache(testRegistry(t), slowFetcher,
			flags.WithClock(clock.Now), flags.WithTTL(5*time.Minute))

		cache.Get(ctx)
		// 4.5 minutes after the call started, but only 3.5 after completion.
		clock.Advance(3*time.Minute + 30*time.Second)

		fresh := cache.Get(ctx)
		assert.NotNil(t, fresh)
	})
}

func TestCacheFetchFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("failure returns defaults without caching", func(t *testing.T) {
		fetcher := &countingFetcher{err: errors.New("network down")}
		cache := flags.NewCache(testRegistry(t), fetcher, flags.WithLogger(logger))

		snapshot := cache.Get(ctx)
		assert.Equal(t, cache.Defaults(), snapshot)

		// No cache was set: the next call retries the network.
		cache.Get(ctx)
		assert.Equal(t, int64(2), fetcher.calls.Load())
	})

	t.Run("failure after success leaves the slot untouched", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		fetcher := &countingFetcher{response: map[string]bool{"dark-mode": true}}
		cache := flags.NewCache(testRegistry(t), fetcher,
			flags.WithClock(clock.Now), flags.WithLogger(logger))

		cache.Get(ctx)

		// Expire the snapshot, then break the network.
		clock.Advance(flags.DefaultTTL + time.Second)
		fetcher.err = errors.New("network down")

		snapshot := cache.Get(ctx)
		assert.False(t, snapshot.Enabled("dark-mode"), "stale value must not be served")
		assert.Equal(t, cache.Defaults(), snapshot)
	})
}

func TestCacheInvalidate(t *testing.T) {
	ctx := context.Background()

	fetcher := &countingFetcher{response: map[string]bool{"dark-mode": true}}
	cache := flags.NewCache(testRegistry(t), fetcher)

	cache.Get(ctx)
	cache.Get(ctx)
	assert.Equal(t, int64(1), fetcher.calls.Load())

	cache.Invalidate()
	cache.Get(ctx)
	assert.Equal(t, int64(2), fetcher.calls.Load())
}

func TestCacheIsEnabled(t *testing.T) {
	ctx := context.Background()

	fetcher := &countingFetcher{response: map[string]bool{"dark-mode": true}}
	cache := flags.NewCache(testRegistry(t), fetcher)

	assert.True(t, cache.IsEnabled(ctx, "dark-mode"))
	assert.True(t, cache.IsEnabled(ctx, "new-sidebar"))
	assert.False(t, cache.IsEnabled(ctx, "ai-insights"))
	assert.False(t, cache.IsEnabled(ctx, "never-registered"))
}

func TestCacheNewPanics(t *testing.T) {
	fetcher := &countingFetcher{}

	assert.Panics(t, func() { flags.NewCache(nil, fetcher) })
	assert.Panics(t, func() { flags.NewCache(testRegistry(t), nil) })
	assert.Panics(t, func() { flags.WithTTL(0) })
	assert.Panics(t, func() { flags.WithClock(nil) })
	assert.Panics(t, func() { flags.WithLogger(nil) })
}
