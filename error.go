// error.go — the error payload for xgx-tensor-error.
//
// Scope (tiny core):
//   - One concrete type, *Error, tagged by Kind (no subtype hierarchy).
//   - Three construction forms, all establishing the same invariants:
//       1. NewError / NewIndexError       (message, backtrace, caller)
//       2. NewErrorAt / NewIndexErrorAt   (location, message)
//       3. NewConditionError /
//          NewIndexConditionError         (file, line, condition, message,
//                                          backtrace, caller)
//   - AppendMessage for mid-stack annotation while the error propagates.
//
// Invariants:
//   - The message stack is never empty after construction.
//   - Derived message fields are recomputed on every mutation; the accessors
//     return cached storage and never fail.
//   - The backtrace is captured at the original site only; AppendMessage
//     never touches it.
//
// Mutation model: unlike most xgx cores, AppendMessage mutates in place. An
// error value travels with exactly one goroutine's unwind (see doc.go), and
// annotation must not discard the originally captured backtrace, so
// copy-on-write buys nothing here and would double allocations on the
// failure path.
package tensorerror

import "fmt"

// Error is the primary failure payload of the tensor runtime.
//
// The zero value is not useful; construct via the New* forms or the raise/
// check helpers in check.go. Methods are not safe for concurrent use with
// AppendMessage on the same value.
type Error struct {
	kind  Kind
	stack msgStack

	// backtrace is an opaque text blob supplied (or captured) at
	// construction; never regenerated afterwards.
	backtrace string

	// Derived from stack and backtrace. Kept as fields so the accessors can
	// hand out stable, previously computed strings without re-rendering.
	msg              string
	msgSansBacktrace string

	// caller is a debugging trick: a raising site can stash an opaque
	// identity here, and a catch site can compare it (==) against values it
	// has on hand to attribute the failure to an operation. Never
	// dereferenced by this layer; may be nil.
	caller any

	// cause is the adopted foreign error, if this value was built by From.
	// Exposed only through Unwrap for errors.Is/As traversal.
	cause error
}

// NewError builds a general failure from a message, a preformatted backtrace
// blob (may be empty), and an optional opaque caller tag.
func NewError(msg, backtrace string, caller any) *Error {
	return newError(KindError, msgStack{msg}, backtrace, caller)
}

// NewIndexError is NewError with the index-failure classification tag.
func NewIndexError(msg, backtrace string, caller any) *Error {
	return newError(KindIndexError, msgStack{msg}, backtrace, caller)
}

// NewErrorAt builds a general failure whose first fragment is the message
// with the location folded in as a trailing annotation:
//
//	"bad input (foo at bar.ext:42)"
//
// No backtrace is recorded; only the composed string form of the location
// persists.
func NewErrorAt(loc SourceLocation, msg string) *Error {
	return newError(KindError, msgStack{annotate(msg, loc)}, "", nil)
}

// NewIndexErrorAt is NewErrorAt with the index-failure classification tag.
func NewIndexErrorAt(loc SourceLocation, msg string) *Error {
	return newError(KindIndexError, msgStack{annotate(msg, loc)}, "", nil)
}

// NewConditionError builds a failure from an assertion site: the first
// fragment embeds the failing condition's literal text alongside the
// supplied message:
//
//	"x == 0 failed at bar.ext:42: expected zero x"
//
// msg may be empty, in which case the fragment ends after the location.
// backtrace and caller behave as in NewError.
func NewConditionError(file string, line uint32, condition, msg, backtrace string, caller any) *Error {
	return newConditionError(KindError, file, line, condition, msg, backtrace, caller)
}

// NewIndexConditionError is NewConditionError with the index-failure
// classification tag.
func NewIndexConditionError(file string, line uint32, condition, msg, backtrace string, caller any) *Error {
	return newConditionError(KindIndexError, file, line, condition, msg, backtrace, caller)
}

func newConditionError(kind Kind, file string, line uint32, condition, msg, backtrace string, caller any) *Error {
	frag := fmt.Sprintf("%s failed at %s:%d", condition, file, line)
	if msg != "" {
		frag += ": " + msg
	}
	return newError(kind, msgStack{frag}, backtrace, caller)
}

func newError(kind Kind, stack msgStack, backtrace string, caller any) *Error {
	e := &Error{
		kind:      kind,
		stack:     stack,
		backtrace: backtrace,
		caller:    caller,
	}
	e.recompose()
	return e
}

// recompose refreshes both derived message fields from the current stack and
// backtrace. Must be called after every mutation; construction and
// AppendMessage are the only mutators.
func (e *Error) recompose() {
	e.msgSansBacktrace = joinStack(e.stack)
	e.msg = composeFull(e.stack, e.backtrace)
}

// AppendMessage pushes a fragment onto the end of the message stack and
// recomputes both derived messages. The backtrace is untouched. Use it from
// a mid-stack layer to add context ("while broadcasting shape [2 3]")
// without discarding the original failure text or its backtrace.
func (e *Error) AppendMessage(msg string) {
	e.stack = stackCloneAppend(e.stack, msg)
	e.recompose()
}

// Error returns the backtrace-free message, the form surfaced to end users
// by default. Boundaries that want the backtrace ask for Message explicitly.
func (e *Error) Error() string { return e.msgSansBacktrace }

// Message returns the complete error message: backtrace (if any) followed by
// the joined message stack. Non-failing; returns cached storage.
func (e *Error) Message() string { return e.msg }

// MessageWithoutBacktrace returns the joined message stack only.
// Non-failing; returns cached storage.
func (e *Error) MessageWithoutBacktrace() string { return e.msgSansBacktrace }

// MessageStack returns a defensive copy of the raw fragments, earliest first.
func (e *Error) MessageStack() []string {
	out := make([]string, len(e.stack))
	copy(out, e.stack)
	return out
}

// Backtrace returns the backtrace blob captured at construction ("" if none).
func (e *Error) Backtrace() string { return e.backtrace }

// Caller returns the opaque caller tag (nil if none). Compare it with ==;
// this layer never interprets it.
func (e *Error) Caller() any { return e.caller }

// Kind returns the classification tag.
func (e *Error) Kind() Kind { return e.kind }

// Unwrap exposes the adopted foreign cause (if this value came from From) so
// stdlib errors.Is/As observe the original error. Returns nil otherwise.
func (e *Error) Unwrap() error { return e.cause }

var _ error = (*Error)(nil)
