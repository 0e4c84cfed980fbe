package tablequery

import "maps"

// DefaultPageSize is used when a state carries no positive page size.
const DefaultPageSize = 10

// FilterAll is the filter value meaning "no filtering on this key".
const FilterAll = "all"

// State describes one list view's query: free-text search, structured
// filters, and the pagination cursor. States are immutable values; the
// With* transitions return updated copies, and any change to the search
// string or a filter resets the page cursor to 1 so stale cursors can never
// reference a page beyond the narrowed result set.
type State struct {
	Search   string
	Filters  map[string]any
	Page     int
	PageSize int
}

// NewState returns an empty query state on page 1.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{Page: 1, PageSize: pageSize}
}

// WithSearch returns a state with the search query replaced and the page
// cursor reset.
func (s State) WithSearch(query string) State {
	s.Search = query
	s.Page = 1
	return s
}

// WithFilter returns a state with one filter set and the page cursor reset.
// The filter map is copied, never shared.
func (s State) WithFilter(key string, value any) State {
	filters := maps.Clone(s.Filters)
	if filters == nil {
		filters = make(map[string]any, 1)
	}
	filters[key] = value

	s.Filters = filters
	s.Page = 1
	return s
}

// WithoutFilter returns a state with one filter removed and the page cursor
// reset.
func (s State) WithoutFilter(key string) State {
	filters := maps.Clone(s.Filters)
	delete(filters, key)

	s.Filters = filters
	s.Page = 1
	return s
}

// WithPage returns a state pointing at the given page. Values below 1 are
// clamped to 1; clamping against the upper bound happens inside Query,
// where the filtered size is known.
func (s State) WithPage(page int) State {
	s.Page = max(1, page)
	return s
}

// WithPageSize returns a state with a new page size. The page cursor is
// kept; Query clamps it against the recomputed page count.
func (s State) WithPageSize(pageSize int) State {
	if pageSize > 0 {
		s.PageSize = pageSize
	}
	return s
}

// Range is an inclusive numeric interval filter. A nil bound is open.
type Range struct {
	Min *float64
	Max *float64
}

// Bound is a convenience for building Range literals.
func Bound(v float64) *float64 {
	return &v
}
