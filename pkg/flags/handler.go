package flags

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SnapshotProvider supplies the snapshot served over HTTP. *Cache satisfies
// it, as does a Registry-defaults wrapper or any app-side store.
type SnapshotProvider interface {
	Get(ctx context.Context) Snapshot
}

// SnapshotProviderFunc adapts a function to the SnapshotProvider interface.
type SnapshotProviderFunc func(ctx context.Context) Snapshot

func (f SnapshotProviderFunc) Get(ctx context.Context) Snapshot {
	return f(ctx)
}

// Handler serves the current snapshot as the flat JSON object clients of
// the fetch endpoint expect: {"flag-id": true, ...}.
func Handler(src SnapshotProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(src.Get(r.Context())); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

// Router mounts the flag endpoint under GET /feature-flags.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/", flags.Router(cache))
func Router(src SnapshotProvider) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/feature-flags", Handler(src))
	return r
}
