// wrap.go — boundary helpers that operate on arbitrary errors.
//
// Purpose
//   - Adopt foreign errors into the *Error model without losing them
//     (the original stays reachable via Unwrap for errors.Is/As).
//   - Give propagation layers one verb, Append, for re-annotating whatever
//     failure value they were handed.
//   - Flatten any caught failure to a labeled string at conversion
//     boundaries (GetExceptionString).
//
// Stays policy-free: no logging, no retry, no translation tables.
package tensorerror

import "fmt"

// From converts any error into a *Error without adding context.
//   - nil → nil
//   - *Error → returned as-is
//   - other error → a general *Error whose message stack is seeded with the
//     original's text; the original is kept as the Unwrap cause. No
//     backtrace is captured (the foreign error's construction site is long
//     gone; a backtrace here would point at the adoption boundary and lie).
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	e := newError(KindError, msgStack{err.Error()}, "", nil)
	e.cause = err
	return e
}

// Append re-annotates a propagating failure with one more message fragment,
// rendered space-joined (see sprint).
//   - nil → nil (no failure to annotate)
//   - *Error → AppendMessage on it; returned for convenience
//   - other error → adopted via From, then annotated
//
// Append operates on the dynamic value it is handed, not on wrapped inner
// errors; a layer that wrapped our *Error in its own type should unwrap
// before annotating.
func Append(err error, parts ...any) *Error {
	if err == nil {
		return nil
	}
	e := From(err)
	e.AppendMessage(sprint(parts...))
	return e
}

// GetExceptionString renders any caught error as a flat string that
// prepends a human-readable type label to the error's own message content:
//
//	tensorerror.IndexError: index 7 is out of bounds ...
//	*fs.PathError: open /nope: no such file or directory
//
// Classification survives in the label even after the string crosses a
// boundary (e.g., conversion to a host-language error) that keeps no Go
// types. For a *Error the content is the complete message, backtrace
// included; the boundary decides what to surface.
func GetExceptionString(err error) string {
	if err == nil {
		return "<nil>"
	}
	if e, ok := AsError(err); ok {
		return e.kind.label() + ": " + e.Message()
	}
	return fmt.Sprintf("%T: %v", err, err)
}
