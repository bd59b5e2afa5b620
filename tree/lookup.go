// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package tree

import (
	"github.com/z5labs/substrate/key"
)

// Lookup returns the value addressed by path, along with whether the
// path exists at all. An empty path returns m itself.
func Lookup(m Map, path string) (any, bool) {
	chain := key.Parse(path)
	if len(chain) == 0 {
		return m, true
	}

	var cur any = m
	for _, k := range chain {
		cm, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = cm[k.Key()]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes v at path, creating intermediate maps as needed. An
// intermediate value which is not a map is replaced by one, so the
// last write along a path always wins.
func Set(m Map, path string, v any) {
	chain := key.Parse(path)
	if len(chain) == 0 {
		return
	}

	for _, k := range chain[:len(chain)-1] {
		next, ok := AsMap(m[k.Key()])
		if !ok {
			next = make(Map)
			m[k.Key()] = next
		}
		m = next
	}
	m[chain[len(chain)-1].Key()] = v
}
