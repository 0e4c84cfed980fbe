package tablequery

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldFunc extracts a named field from an item. Search and filter keys are
// resolved through it, keeping the pipeline independent of the item type.
type FieldFunc[T any] func(item T, key string) any

// MapField is a FieldFunc for map-shaped items.
func MapField(item map[string]any, key string) any {
	return item[key]
}

// Result is one deterministic page over the filtered collection.
type Result[T any] struct {
	Page        []T
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// Query runs the fixed search -> filter -> paginate pipeline over a
// collection. Each stage narrows the previous one:
//
//  1. Search: case-insensitive substring match over the declared searchable
//     fields, stringified. An empty query filters nothing.
//  2. Filters: ANDed across keys. "all", "", and nil values are no-ops; a
//     Range performs an inclusive numeric test; anything else is strict
//     equality.
//  3. Pagination: the state's page, clamped to [1, max(1, totalPages)].
//
// Query is stateless and never mutates the input: identical arguments yield
// identical results regardless of call order.
func Query[T any](items []T, state State, searchFields []string, field FieldFunc[T]) Result[T] {
	filtered := items
	if state.Search != "" && len(searchFields) > 0 {
		filtered = searchStage(filtered, state.Search, searchFields, field)
	}
	if len(state.Filters) > 0 {
		filtered = filterStage(filtered, state.Filters, field)
	}

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalCount := len(filtered)
	totalPages := (totalCount + pageSize - 1) / pageSize

	page := min(max(1, state.Page), max(1, totalPages))

	start := (page - 1) * pageSize
	end := min(start+pageSize, totalCount)
	var slice []T
	if start < totalCount {
		slice = filtered[start:end]
	}

	return Result[T]{
		Page:        slice,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func searchStage[T any](items []T, query string, searchFields []string, field FieldFunc[T]) []T {
	needle := strings.ToLower(query)

	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, key := range searchFields {
			value := field(item, key)
			if value == nil {
				continue
			}
			if strings.Contains(strings.ToLower(fmt.Sprint(value)), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

func filterStage[T any](items []T, filters map[string]any, field FieldFunc[T]) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, filters, field) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesAll[T any](item T, filters map[string]any, field FieldFunc[T]) bool {
	for key, filter := range filters {
		if isNoop(filter) {
			continue
		}

		value := field(item, key)
		if r, ok := filter.(Range); ok {
			if !inRange(value, r) {
				return false
			}
			continue
		}
		if !equalValues(value, filter) {
			return false
		}
	}
	return true
}

// isNoop reports whether a filter value disables the filter: "all", the
// empty string, or nil.
func isNoop(filter any) bool {
	if filter == nil {
		return true
	}
	if s, ok := filter.(string); ok {
		return s == "" || s == FilterAll
	}
	return false
}

// inRange performs the inclusive numeric test. Non-numeric field values
// never match a range filter.
func inRange(value any, r Range) bool {
	v, ok := toFloat(value)
	if !ok {
		return false
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// equalValues is strict equality with numeric normalization, so a filter of
// int 5 matches a field of int64 5. Uncomparable values fall back to
// reflect.DeepEqual rather than panicking.
func equalValues(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
