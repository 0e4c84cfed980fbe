package flags

import (
	"errors"
	"slices"
)

// FlagID identifies a feature flag in the compile-time registry.
type FlagID string

// Category groups flags for display and filtering.
type Category string

// Predefined flag categories.
const (
	CategoryGeneral      Category = "general"
	CategoryUI           Category = "ui"
	CategoryBeta         Category = "beta"
	CategoryExperimental Category = "experimental"
)

// Definition describes one flag: identity, human-readable metadata, and the
// default value used whenever the remote source omits the flag or cannot be
// reached.
type Definition struct {
	ID          FlagID   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Default     bool     `json:"default"`
	Category    Category `json:"category,omitempty"`
}

// Registry is the fixed enumeration of flag ids the cache will accept from
// a remote source. Ids outside the registry are ignored on fetch, which
// protects against server/client drift. Immutable after construction.
type Registry struct {
	defs  map[FlagID]Definition
	order []FlagID
}

// NewRegistry builds a registry from flag definitions. Definitions without
// a category land in CategoryGeneral. Empty or duplicate ids are rejected.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		defs:  make(map[FlagID]Definition, len(defs)),
		order: make([]FlagID, 0, len(defs)),
	}

	for _, def := range defs {
		if def.ID == "" {
			return nil, ErrEmptyFlagID
		}
		if _, exists := r.defs[def.ID]; exists {
			return nil, errors.Join(ErrDuplicateFlag, errors.New("flag id "+string(def.ID)))
		}
		if def.Category == "" {
			def.Category = CategoryGeneral
		}
		r.defs[def.ID] = def
		r.order = append(r.order, def.ID)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on failure. Intended for
// package-level registry declarations.
func MustNewRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether the id belongs to the registry.
func (r *Registry) Contains(id FlagID) bool {
	_, ok := r.defs[id]
	return ok
}

// Definition returns the metadata for a flag id, if registered.
func (r *Registry) Definition(id FlagID) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Definitions returns all flag definitions in declaration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.defs[id])
	}
	return defs
}

// ByCategory returns the definitions of one category in declaration order.
func (r *Registry) ByCategory(category Category) []Definition {
	var defs []Definition
	for _, id := range r.order {
		if def := r.defs[id]; def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}

// Defaults returns a fresh snapshot holding every registered flag at its
// default value.
func (r *Registry) Defaults() Snapshot {
	snapshot := make(Snapshot, len(r.defs))
	for id, def := range r.defs {
		snapshot[id] = def.Default
	}
	return snapshot
}

// IDs returns all registered flag ids sorted lexically.
func (r *Registry) IDs() []FlagID {
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	return ids
}

// Snapshot maps every registered flag id to its current value. Snapshots
// built by the cache are always total over the registry: every known id has
// a value, defaulted when the remote omits it. Treat snapshots as read-only.
type Snapshot map[FlagID]bool

// Enabled reports whether a flag is on in this snapshot. Unknown ids are
// off.
func (s Snapshot) Enabled(id FlagID) bool {
	return s[id]
}
