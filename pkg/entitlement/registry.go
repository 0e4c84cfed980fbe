package entitlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CounterFunc returns the current usage of a countable feature for one
// account. Should be fast: cache or aggregate at repository level.
type CounterFunc func(ctx context.Context, accountID uuid.UUID) (int64, error)

// CounterRegistry maps a countable Feature to its CounterFunc.
// Not thread-safe: register all counters at startup only.
type CounterRegistry map[Feature]CounterFunc

// NewRegistry returns a new, empty CounterRegistry.
func NewRegistry() CounterRegistry {
	return make(CounterRegistry)
}

// Register sets or replaces the CounterFunc for the given feature. Panics if
// fn is nil or the feature is not countable.
func (r CounterRegistry) Register(feature Feature, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("entitlement: CounterFunc for feature %q cannot be nil", feature))
	}
	if !IsCountable(feature) {
		panic(fmt.Sprintf("entitlement: feature %q is not countable", feature))
	}
	r[feature] = fn
}

// StaticCounter returns a CounterFunc that always reports the same value.
// Useful for tests and for features whose usage is tracked elsewhere.
func StaticCounter(value int64) CounterFunc {
	return func(context.Context, uuid.UUID) (int64, error) {
		return value, nil
	}
}
