// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package substrate provides a configuration store whose string values
// may reference other values through embedded placeholders.
//
// A store owns two trees: the definition tree, which holds the raw
// values exactly as merged in, and the resolved tree, which is rebuilt
// from the definition tree after every mutation. Reads are always
// served from the resolved tree.
//
// # Placeholders
//
// Two placeholder forms may be embedded in any string value:
//
//	${namespace:keypath}            value lookup
//	${namespace:keypath, default}   value lookup with fallback
//	@{namespace:keypath, arg...}    function invocation
//
// Namespaces are registered through [Store.Resolve]. The reserved
// namespace self always refers to the store's own definition tree, so
// values can reference each other:
//
//	store := substrate.New()
//	store.Merge(map[string]any{
//	    "app": map[string]any{
//	        "name": "substrate",
//	        "id":   "${self:app.name}-${env:REGION, local}",
//	    },
//	})
//	store.Resolve(substrate.Dictionary{
//	    "env": map[string]string{"REGION": "eu-west-1"},
//	})
//	store.Get("app.id") // "substrate-eu-west-1"
//
// Placeholders nest: the innermost spans are substituted first, so a
// default may itself be a placeholder. Resolution recurses until no
// placeholders remain or the depth limit is reached; the limit is a
// silent truncation which leaves the string partially substituted
// rather than an error.
//
// A placeholder spanning an entire string may resolve to a typed value
// (bool, number, slice, map, nil or [Undefined]) which is carried
// through un-stringified. After substitution the literal tokens
// undefined, null, true and false coerce to their typed values, and a
// single pair of outermost quotes is stripped, so a default written as
// 'true' stays the string "true".
//
// # Sources
//
// Configuration enters a store through [Source] values: [FromYaml],
// [FromJson], [FromFile], [FromEnv] and [FromArgs]. Sources only
// produce nested trees, all placeholder handling lives in the store.
package substrate
