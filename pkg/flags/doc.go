// Package flags provides a time-bounded cache of boolean feature toggles
// fetched from a remote source, with deterministic default behavior.
//
// A Registry declares the closed set of flag ids the application knows
// about, each with metadata and a default value. The Cache wraps a Fetcher
// (usually the bundled HTTPFetcher against GET /feature-flags) and holds a
// single snapshot slot with a freshness timestamp.
//
// Every successful fetch produces a brand-new complete snapshot: registry
// defaults overwritten only by remote entries whose id is registered.
// Unknown remote ids are silently dropped, so server and client can drift
// without corrupting local state. A failed fetch returns the defaults to
// the caller without caching them; the next call retries the network.
//
//	registry := flags.MustNewRegistry(
//		flags.Definition{ID: "dark-mode", Name: "Dark mode", Default: false, Category: flags.CategoryUI},
//		flags.Definition{ID: "new-sidebar", Name: "New sidebar", Default: true, Category: flags.CategoryUI},
//	)
//
//	cache := flags.NewCache(registry, flags.NewHTTPFetcher(endpoint))
//
//	if cache.IsEnabled(ctx, "dark-mode") {
//		// toggle-gated path
//	}
//
// The clock and fetcher are injectable, so TTL behavior is testable with a
// fake clock and a fake fetcher. Concurrent callers that find the slot
// stale each trigger their own fetch; the last completion wins the slot and
// restarts the TTL window.
package flags
