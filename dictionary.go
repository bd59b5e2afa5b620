// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"fmt"

	"github.com/z5labs/substrate/tree"
)

// SelfNamespace is the reserved namespace which is always bound, by
// identity, to a store's definition tree. It can never be supplied
// through [Store.Resolve].
const SelfNamespace = "self"

// Dictionary maps namespace names to lookup sources. A lookup source
// is usually a nested map but may also be a [Func] for the function
// placeholder form.
type Dictionary map[string]any

// Func is a function namespace. A placeholder of the form
// @{ns:keypath, arg...} invokes the Func registered under ns, passing
// the resolved value at keypath as the first argument followed by each
// remaining argument.
type Func func(args ...any) (any, error)

// ReservedNamespaceError occurs when a dictionary passed to
// [Store.Resolve] tries to bind a reserved namespace.
type ReservedNamespaceError struct {
	Namespace string
}

// Error implements the error interface.
func (e ReservedNamespaceError) Error() string {
	return fmt.Sprintf("dictionary namespace is reserved: %s", e.Namespace)
}

type undefined struct{}

// Undefined is the sentinel value a placeholder resolves to when its
// namespace or keypath can not be found and no usable default was
// given. It is distinct from nil so "resolved to nothing" can be told
// apart from "resolved to null".
var Undefined undefined

// String implements the fmt.Stringer interface.
func (undefined) String() string {
	return "undefined"
}

func lookupIn(src any, path string) (any, bool) {
	if m, ok := tree.AsMap(src); ok {
		return tree.Lookup(m, path)
	}
	if m, ok := src.(map[string]string); ok {
		v, found := m[path]
		return v, found
	}
	return nil, false
}
