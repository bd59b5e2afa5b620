// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"log/slog"
	"strings"

	"github.com/z5labs/substrate/tree"

	"dario.cat/mergo"
)

// DefaultMaxDepth is the substitution recursion limit used unless
// [WithMaxDepth] overrides it. The limit guarantees termination on
// circular placeholder references.
const DefaultMaxDepth = 10

// Store owns a raw definition tree and the resolved tree materialized
// from it. Reads are served from the resolved tree; every mutation
// reruns a full resolution pass before returning, so the two trees are
// never observably out of sync.
//
// A Store is not safe for concurrent use. Resolution is fully
// synchronous by design and the API provides no asynchronous entry
// points.
type Store struct {
	log      *slog.Logger
	maxDepth int

	definition tree.Map
	resolved   tree.Map
	dict       Dictionary
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger used for diagnostic output. The default
// is [slog.Default].
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithMaxDepth overrides the substitution recursion limit.
func WithMaxDepth(n int) Option {
	return func(s *Store) {
		s.maxDepth = n
	}
}

// New returns an empty Store. The reserved self namespace is bound to
// the definition tree before any option runs.
func New(opts ...Option) *Store {
	s := &Store{
		log:        slog.Default(),
		maxDepth:   DefaultMaxDepth,
		definition: make(tree.Map),
		resolved:   make(tree.Map),
		dict:       Dictionary{},
	}
	s.dict[SelfNamespace] = s.definition
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read constructs a Store and applies each source to it in order.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Store, error) {
	s := New()
	for _, src := range srcs {
		err := src.Apply(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// All returns the entire resolved tree. The returned map is live, not
// a copy: mutations made by the caller are visible to later reads.
func (s *Store) All() tree.Map {
	return s.resolved
}

// Get returns the resolved value at path, or nil if the path does not
// exist. Paths may use '.' or ':' as separators. Maps and slices are
// returned by reference into the resolved tree.
func (s *Store) Get(path string) any {
	v, ok := tree.Lookup(s.resolved, path)
	if !ok {
		return nil
	}
	return v
}

// GetDefault returns the resolved value at path, or def if the path is
// missing or resolved to [Undefined].
func (s *Store) GetDefault(path string, def any) any {
	v, ok := tree.Lookup(s.resolved, path)
	if !ok || v == Undefined {
		return def
	}
	return v
}

// Set writes value into the definition tree at path and reruns
// resolution. The value may contain placeholders. Maps and slices are
// merged structurally, so the caller keeps ownership of what it passed
// in: mutating it afterwards does not affect the store.
func (s *Store) Set(path string, value any) {
	tree.Merge(s.definition, tree.Unflatten(map[string]any{path: value}))
	s.reresolve()
}

// Merge deep-merges data into the definition tree and reruns
// resolution. Flat input, recognized by separator characters in its
// top level keys, is unflattened first. A nil data is a no-op.
func (s *Store) Merge(data map[string]any) {
	if data == nil {
		return
	}

	m := tree.Map(data)
	if isFlat(data) {
		m = tree.Unflatten(data)
	}
	tree.Merge(s.definition, m)
	s.reresolve()
}

func isFlat(data map[string]any) bool {
	for k := range data {
		if strings.ContainsAny(k, ".:") {
			return true
		}
	}
	return false
}

// Resolve merges dict into the store's dictionary and reruns
// resolution. Dictionary merging is additive: namespaces supplied by
// earlier calls survive later ones, with overlapping keys deep merged.
// Passing the reserved self namespace is an error and leaves both the
// dictionary and the resolved tree untouched. Resolve(nil) simply
// reruns resolution.
func (s *Store) Resolve(dict Dictionary) error {
	if dict != nil {
		if _, ok := dict[SelfNamespace]; ok {
			return ReservedNamespaceError{Namespace: SelfNamespace}
		}

		err := mergo.Merge(&s.dict, dict, mergo.WithOverride)
		if err != nil {
			return err
		}
	}

	s.reresolve()
	return nil
}

// reresolve rebuilds the resolved tree from scratch. The definition
// tree is never written to here, which is what makes resolution
// passes idempotent.
func (s *Store) reresolve() {
	r := &resolver{
		dict:     s.dict,
		maxDepth: s.maxDepth,
		log:      s.log,
	}

	flat := tree.Flatten(s.definition)
	resolved := make(tree.Map)
	for path, leaf := range flat {
		tree.Set(resolved, path, r.resolveValue(leaf, 0))
	}
	s.resolved = resolved

	s.log.Debug("resolved definition tree", slog.Int("leaves", len(flat)))
}
