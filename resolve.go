// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package substrate

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/z5labs/substrate/internal/try"
)

// resolver evaluates placeholders against a dictionary. It is
// rebuilt for every resolution pass and holds no state of its own
// beyond the configured limits.
type resolver struct {
	dict     Dictionary
	maxDepth int
	log      *slog.Logger
}

func (r *resolver) resolveValue(v any, depth int) any {
	switch x := v.(type) {
	case string:
		return r.resolveString(x, depth)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = r.resolveValue(x[i], depth)
		}
		return out
	default:
		return v
	}
}

func (r *resolver) resolveString(s string, depth int) any {
	out := r.expand(s, depth)

	str, ok := out.(string)
	if !ok || str == s {
		// Either a typed value was carried through a final
		// substitution or the string never contained a resolvable
		// placeholder. Literal coercion only applies to strings
		// which substitution actually changed.
		return out
	}
	return coerce(str)
}

// expand performs one inside-out substitution pass and recurses on the
// result until no placeholders remain or the depth limit is reached.
// Hitting the limit is a silent truncation: the partially substituted
// string is returned as is so an accidental cycle can not wedge the
// whole store.
func (r *resolver) expand(s string, depth int) any {
	depth++
	if depth > r.maxDepth {
		r.log.Debug("substitution depth limit reached",
			slog.Int("limit", r.maxDepth),
			slog.String("value", s),
		)
		return s
	}

	spans := findInnermost(s)
	if len(spans) == 0 {
		return s
	}

	if len(spans) == 1 && spans[0].start == 0 && spans[0].end == len(s) {
		// A final substitution: the whole string is a single
		// placeholder, so a non-string result keeps its type
		// instead of being stringified.
		out := r.eval(spans[0], depth)
		str, ok := out.(string)
		if !ok {
			return out
		}
		return r.expand(str, depth)
	}

	var sb strings.Builder
	last := 0
	for _, sp := range spans {
		sb.WriteString(s[last:sp.start])
		sb.WriteString(stringify(r.eval(sp, depth)))
		last = sp.end
	}
	sb.WriteString(s[last:])
	return r.expand(sb.String(), depth)
}

func (r *resolver) eval(sp span, depth int) any {
	ns, rest, _ := strings.Cut(sp.body, ":")
	ns = strings.TrimSpace(ns)

	parts := strings.Split(rest, ",")
	keypath := strings.TrimSpace(parts[0])

	if sp.sigil == '@' {
		return r.call(ns, keypath, parts[1:], depth)
	}

	if src, ok := r.dict[ns]; ok {
		// Values reached through a namespace are carried by
		// reference, not copied, so maps and slices keep their
		// identity with the definition tree.
		if v, found := lookupIn(src, keypath); found {
			return v
		}
	}

	for _, p := range parts[1:] {
		tok := strings.TrimSpace(p)
		if tok == "" || tok == "undefined" {
			continue
		}
		return tok
	}
	return Undefined
}

func (r *resolver) call(ns, keypath string, rawArgs []string, depth int) any {
	args := make([]any, 0, len(rawArgs)+1)
	args = append(args, r.argValue(keypath, depth))
	for _, a := range rawArgs {
		args = append(args, r.argValue(strings.TrimSpace(a), depth))
	}

	fn, ok := r.dict[ns].(Func)
	if !ok {
		return Undefined
	}

	out, err := r.invoke(fn, args)
	if err != nil {
		r.log.Debug("function namespace failed",
			slog.String("namespace", ns),
			slog.String("keypath", keypath),
			slog.Any("error", err),
		)
		return Undefined
	}
	return out
}

// argValue resolves a function argument token. A token naming a value
// in the definition tree resolves through the whole engine, anything
// else is carried as a coerced literal.
func (r *resolver) argValue(tok string, depth int) any {
	if src, ok := r.dict[SelfNamespace]; ok {
		if v, found := lookupIn(src, tok); found {
			return r.resolveValue(v, depth)
		}
	}
	return coerce(tok)
}

func (r *resolver) invoke(fn Func, args []any) (out any, err error) {
	defer try.Recover(&err)
	return fn(args...)
}

// span is a single placeholder occurrence within a string.
type span struct {
	start, end int
	sigil      byte
	body       string
}

// findInnermost returns, in one left-to-right pass, every placeholder
// span which does not itself contain another unresolved placeholder.
// Outer spans wrapping an innermost one are left for a later pass.
// Text which merely looks like a placeholder but has no namespace
// separator is not matched at all and stays literal.
func findInnermost(s string) []span {
	var spans []span
	var openers []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '$' || c == '@') && i+1 < len(s) && s[i+1] == '{' {
			openers = append(openers, i)
			i++
			continue
		}
		if c != '}' || len(openers) == 0 {
			continue
		}

		open := openers[len(openers)-1]
		openers = openers[:len(openers)-1]
		if containsSpanAfter(spans, open) {
			continue
		}

		body := s[open+2 : i]
		if !strings.Contains(body, ":") {
			continue
		}
		spans = append(spans, span{start: open, end: i + 1, sigil: s[open], body: body})
	}
	return spans
}

func containsSpanAfter(spans []span, start int) bool {
	for _, sp := range spans {
		if sp.start > start {
			return true
		}
	}
	return false
}

// coerce converts the exact literal tokens undefined, null, true and
// false into their typed values. Any other string has at most one
// matching pair of outermost quotes stripped, which is how a default
// like 'true' forces string semantics.
func coerce(s string) any {
	switch s {
	case "undefined":
		return Undefined
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	return unquote(s)
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	if first != '\'' && first != '"' {
		return s
	}
	return s[1 : len(s)-1]
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
