// predicates.go — catch-site classification helpers.
//
// Scope:
//   • Zero-policy helpers that answer "what kind of failure is this" by tag,
//     never by message inspection.
//   • Interop-first: traversal uses errors.As, so predicates see through
//     wrapping applied by layers above this one.
//
// Out of scope (by design):
//   • Retry/recovery policy; this layer only classifies.
package tensorerror

import "errors"

// AsError extracts the *Error in err's chain, if any.
// Nil-safe; returns (nil, false) when there is none.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the classification tag of the first *Error in err's chain,
// or "" if the chain contains none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.kind
	}
	return ""
}

// IsIndexError reports whether err carries the out-of-bounds classification.
// Catch sites use this to convert bounds failures specially (e.g., to a
// host-language index exception) without touching message text.
func IsIndexError(err error) bool {
	return KindOf(err) == KindIndexError
}

// CallerOf returns the opaque caller tag of the first *Error in err's chain
// (nil if none, or none set). Catchers compare it with == against tags they
// have on hand to attribute the failure to an operation.
func CallerOf(err error) any {
	if e, ok := AsError(err); ok {
		return e.caller
	}
	return nil
}
