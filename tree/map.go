// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package tree implements the nested key value structure which underpins
// a substrate store, along with pure helpers for flattening, merging and
// addressing values inside of it.
package tree

// Map is an ordinary map[string]any holding scalars, slices and
// nested maps.
type Map map[string]any

// AsMap reports whether v is map shaped, returning it as a Map if so.
// Both Map and plain map[string]any values are recognized since callers
// routinely hand over maps produced by yaml/json decoding.
func AsMap(v any) (Map, bool) {
	switch x := v.(type) {
	case Map:
		return x, true
	case map[string]any:
		return Map(x), true
	default:
		return nil, false
	}
}

// Merge folds src into dst. Nested maps are merged recursively while
// scalars and slices replace the destination value wholesale. Keys of
// dst which are absent from src are never touched. The merged branches
// are structural copies, so dst never aliases maps or slices owned
// by the caller of Merge.
func Merge(dst, src Map) {
	for k, v := range src {
		sm, srcIsMap := AsMap(v)
		if !srcIsMap {
			dst[k] = copyValue(v)
			continue
		}

		dm, dstIsMap := AsMap(dst[k])
		if !dstIsMap {
			dm = make(Map, len(sm))
			dst[k] = dm
		}
		Merge(dm, sm)
	}
}

func copyValue(v any) any {
	switch x := v.(type) {
	case Map:
		m := make(Map, len(x))
		Merge(m, x)
		return m
	case map[string]any:
		m := make(Map, len(x))
		Merge(m, x)
		return m
	case []any:
		s := make([]any, len(x))
		for i := range x {
			s[i] = copyValue(x[i])
		}
		return s
	default:
		return v
	}
}
