// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"encoding/json"
	"io"

	"github.com/z5labs/substrate/tree"

	"gopkg.in/yaml.v3"
)

// PrintOption configures [Store.Print].
type PrintOption func(*printOptions)

type printOptions struct {
	definition bool
	asJSON     bool
	path       string
}

// PrintDefinition dumps the raw definition tree, placeholders and all,
// instead of the resolved tree.
func PrintDefinition() PrintOption {
	return func(po *printOptions) {
		po.definition = true
	}
}

// PrintAsJSON emits JSON instead of YAML.
func PrintAsJSON() PrintOption {
	return func(po *printOptions) {
		po.asJSON = true
	}
}

// PrintPath restricts the dump to the subtree at the given path.
func PrintPath(path string) PrintOption {
	return func(po *printOptions) {
		po.path = path
	}
}

// Print writes a diagnostic dump of the store to w. [Undefined]
// renders as null so any valid internal state encodes cleanly.
func (s *Store) Print(w io.Writer, opts ...PrintOption) error {
	var po printOptions
	for _, opt := range opts {
		opt(&po)
	}

	var v any = s.resolved
	if po.definition {
		v = s.definition
	}
	if po.path != "" {
		m, _ := tree.AsMap(v)
		v, _ = tree.Lookup(m, po.path)
	}
	v = sanitize(v)

	if po.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(v)
	if err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// sanitize deep copies v for encoding, replacing the Undefined
// sentinel with nil.
func sanitize(v any) any {
	if v == Undefined {
		return nil
	}
	if m, ok := tree.AsMap(v); ok {
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = sanitize(e)
		}
		return out
	}
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = sanitize(e)
		}
		return out
	}
	return v
}
