// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"strings"

	"github.com/z5labs/substrate/tree"
)

// EnvOption configures an [Env] source.
type EnvOption func(*Env)

// EnvPick restricts the source to the named variables. Without it
// every variable in the environ slice is merged.
func EnvPick(names ...string) EnvOption {
	return func(src *Env) {
		src.pick = make(map[string]struct{}, len(names))
		for _, n := range names {
			src.pick[n] = struct{}{}
		}
	}
}

// EnvDelimiter sets the substring marking path nesting boundaries in
// variable names. The default is "__", so FOO__BAR merges as foo.bar.
func EnvDelimiter(d string) EnvOption {
	return func(src *Env) {
		src.delim = d
	}
}

// Env represents a Source where its underlying values are extracted
// from environment variable pairs.
type Env struct {
	environ []string
	pick    map[string]struct{}
	delim   string
}

// FromEnv returns a Source which will apply its config from the given
// "KEY=VALUE" pairs. Callers usually pass os.Environ(); taking the
// slice explicitly keeps the source testable without touching process
// state. Path segments are lowercased.
func FromEnv(environ []string, opts ...EnvOption) Env {
	src := Env{
		environ: environ,
		delim:   "__",
	}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// Apply implements the Source interface.
func (src Env) Apply(s *Store) error {
	flat := make(map[string]any)
	for _, pair := range src.environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if src.pick != nil {
			if _, ok := src.pick[k]; !ok {
				continue
			}
		}

		segments := strings.Split(k, src.delim)
		for i := range segments {
			segments[i] = strings.ToLower(segments[i])
		}
		flat[strings.Join(segments, ".")] = v
	}

	s.Merge(tree.Unflatten(flat))
	return nil
}
