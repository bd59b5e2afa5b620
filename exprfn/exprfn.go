// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package exprfn builds substrate function namespaces out of
// expr-lang expressions, so simple computed values do not require
// writing Go.
package exprfn

import (
	"fmt"

	"github.com/z5labs/substrate"

	"github.com/expr-lang/expr"
)

// New compiles src into a [substrate.Func]. Inside the expression the
// placeholder arguments are bound as the slice "args" as well as the
// convenience names a0, a1, and so on. The expression is compiled
// once; each invocation only runs the compiled program.
//
//	store.Resolve(substrate.Dictionary{
//	    "join": exprfn.Must(`a0 + "-" + a1`),
//	})
//	// "@{join:app.name, dev}"
func New(src string) (substrate.Func, error) {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	return func(args ...any) (any, error) {
		env := map[string]any{
			"args": args,
		}
		for i, a := range args {
			env[fmt.Sprintf("a%d", i)] = a
		}
		return expr.Run(program, env)
	}, nil
}

// Must is like [New] but panics if the expression fails to compile.
// It is intended for statically known expressions.
func Must(src string) substrate.Func {
	fn, err := New(src)
	if err != nil {
		panic(err)
	}
	return fn
}
