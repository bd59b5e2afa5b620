// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package tree

import (
	"github.com/z5labs/substrate/key"
)

// Flatten walks m and returns one entry per terminal value, keyed by
// its dotted path. Scalars, slices and explicitly empty maps are all
// terminal; slices in particular are not recursed into element by
// element, so a path maps to the whole slice.
func Flatten(m Map) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, m, nil)
	return flat
}

func flattenInto(flat map[string]any, m Map, chain key.Chain) {
	for k, v := range m {
		sub, ok := AsMap(v)
		if ok && len(sub) > 0 {
			flattenInto(flat, sub, append(chain, key.Name(k)))
			continue
		}
		flat[append(chain, key.Name(k)).Key()] = v
	}
}

// Unflatten is the inverse of [Flatten]. Intermediate maps are created
// as needed. Paths may use '.' or ':' as separators.
func Unflatten(flat map[string]any) Map {
	m := make(Map, len(flat))
	for path, v := range flat {
		Set(m, path, v)
	}
	return m
}
