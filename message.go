// message.go — the message stack and its pure composition rules.
//
// Design:
//   • Internal representation: append-only []string (insertion order is the
//     narrative order; earliest fragment first).
//   • Composition is pure: the same (stack, backtrace) always renders the
//     same strings, so derived fields can be cached and recomputed freely.
//   • Fragment boundaries are newlines; the backtrace, when present, renders
//     before the joined stack and nothing renders after it.
//
// Note: all identifiers here are unexported except IfEmptyThen, which is part
// of the public check-helper contract.
package tensorerror

import (
	"fmt"
	"strings"
)

// msgStack is the ordered list of text fragments composing an error's
// narrative. Treat it as append-only; never modify elements in place once
// published.
type msgStack []string

// stackCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append:
// an *Error handed to MessageStack() must not observe later growth.
func stackCloneAppend(dst msgStack, add ...string) msgStack {
	out := make(msgStack, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// joinStack renders fragments in append order, newline-separated, so the
// outermost (most recent) annotation reads last.
func joinStack(st msgStack) string {
	return strings.Join(st, "\n")
}

// composeFull renders the complete message: backtrace (if non-empty) followed
// by the joined stack, with a newline boundary between the two unless the
// backtrace already ends in one.
func composeFull(st msgStack, backtrace string) string {
	joined := joinStack(st)
	if backtrace == "" {
		return joined
	}
	if strings.HasSuffix(backtrace, "\n") {
		return backtrace + joined
	}
	return backtrace + "\n" + joined
}

// annotate folds a source location into a message as a trailing marker.
// Only this composed form persists; the location is not stored separately.
func annotate(msg string, loc SourceLocation) string {
	return fmt.Sprintf("%s (%s)", msg, loc)
}

// IfEmptyThen returns x if it is non-empty; otherwise y.
//
// This is the selection rule behind Check's generated fallback message: the
// caller's text wins whenever any was supplied. Exposed because downstream
// validation layers reuse the same rule for their own defaults.
func IfEmptyThen(x, y string) string {
	if x == "" {
		return y
	}
	return x
}

// sprint renders variadic message parts into one string, joined by single
// spaces: sprint("x =", 0) → "x = 0". A lone string part is returned
// byte-identical. Parts format with fmt's %v verb.
func sprint(parts ...any) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		if s, ok := parts[0].(string); ok {
			return s
		}
		return fmt.Sprint(parts[0])
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}
