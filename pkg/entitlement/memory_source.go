package entitlement

import (
	"context"
	"maps"
	"sync"
)

// staticSource implements the Source interface using an in-memory plan table.
type staticSource struct {
	mu    sync.RWMutex
	table Table
}

// NewStaticSource returns an in-memory Source with a copy of the given table.
func NewStaticSource(table Table) Source {
	return &staticSource{table: maps.Clone(table)}
}

// Load returns a copy of the plan table.
// The returned map is not protected by the mutex after return.
func (s *staticSource) Load(ctx context.Context) (Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.table), nil
}
