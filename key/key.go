// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for strongly typed keys in key value pairs.
package key

import (
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Chain represents nested keys.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := range k {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, ".")
}

// Name represents a single key. Name can be nested under other keys.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Parse splits a path into a [Chain]. Both '.' and ':' are accepted
// as segment separators, with ':' normalized to '.' first. An empty
// path parses to an empty Chain.
func Parse(path string) Chain {
	path = Normalize(path)
	if path == "" {
		return Chain{}
	}

	segments := strings.Split(path, ".")
	chain := make(Chain, len(segments))
	for i, s := range segments {
		chain[i] = Name(s)
	}
	return chain
}

// Normalize rewrites ':' separators to '.' so both spellings address
// the same value.
func Normalize(path string) string {
	return strings.ReplaceAll(path, ":", ".")
}
