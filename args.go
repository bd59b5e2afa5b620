// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"strings"
	"unicode"

	"github.com/z5labs/substrate/tree"
)

// ArgOption configures an [Args] source.
type ArgOption func(*Args)

// ArgPick restricts the source to the named keys, matched after flag
// prefixes have been stripped.
func ArgPick(keys ...string) ArgOption {
	return func(src *Args) {
		src.pick = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			src.pick[k] = struct{}{}
		}
	}
}

// Args represents a Source where its underlying values are parsed
// from "key=value" tokens of a process argument list.
type Args struct {
	args []string
	pick map[string]struct{}
}

// FromArgs returns a Source which will apply its config from the
// given argument tokens. Leading non-letter runes are stripped from
// keys, so --log.level=debug merges at log.level. A token without a
// value defaults to "true".
func FromArgs(args []string, opts ...ArgOption) Args {
	src := Args{args: args}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// Apply implements the Source interface.
func (src Args) Apply(s *Store) error {
	flat := make(map[string]any)
	for _, raw := range src.args {
		k, v, ok := strings.Cut(raw, "=")
		if !ok {
			v = "true"
		}

		k = strings.TrimLeftFunc(k, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if k == "" {
			continue
		}
		if src.pick != nil {
			if _, ok := src.pick[k]; !ok {
				continue
			}
		}
		flat[k] = v
	}

	s.Merge(tree.Unflatten(flat))
	return nil
}
