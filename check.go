// check.go — call-site helpers: raise, check, assert.
//
// Scope:
//   - Raise / RaiseIndex: unconditional failure construction with automatic
//     call-site capture (the caller never hand-writes a location triple).
//   - InternalAssert: guards invariants that hold unless the library itself
//     is buggy; the failure message invites a bug report.
//   - Check: validates user input; guaranteed to carry an actionable message
//     (a generated fallback names the condition when the caller supplied no
//     text).
//   - Assert / AssertMsg: deprecated legacy spellings of InternalAssert.
//
// Severity × audience:
//   - Raise/RaiseIndex/InternalAssert/Check are fatal to the operation: they
//     produce an error value that propagates until a catch site handles it.
//     None of them aborts the process, so all are safe to leave enabled in
//     production.
//   - Warn (warning.go) is the advisory counterpart: dispatched, not raised.
//
// Cost model: every helper tests its condition before doing anything else;
// location and backtrace capture happen only on the failing branch.
package tensorerror

// Raise builds a general *Error at the call site. Parts are rendered
// space-joined (see sprint); callers must supply message text.
//
//	return tensorerror.Raise("cannot broadcast", a, "with", b)
func Raise(parts ...any) *Error {
	return NewErrorAt(locate(0), sprint(parts...))
}

// RaiseIndex is Raise with the index-failure classification tag, for
// out-of-bounds conditions a higher layer wants to catch selectively.
func RaiseIndex(parts ...any) *Error {
	return NewIndexErrorAt(locate(0), sprint(parts...))
}

// InternalAssert guards an internal invariant. It returns nil when cond
// holds. When cond is false it returns an *Error embedding the condition's
// literal text, the failing site, a bug-report request, and the rendered
// extras, plus a backtrace captured here (the original site).
//
//	if err := tensorerror.InternalAssert(x == 0, "x == 0", "x =", x); err != nil {
//		return err
//	}
//
// Assuming no bugs in the library, these conditions are always true: use
// Check instead for anything a caller's input can trigger.
func InternalAssert(cond bool, condition string, extras ...any) error {
	if cond {
		return nil
	}
	return internalAssertError(1, condition, extras...)
}

// internalAssertError does the failing-branch work for InternalAssert and
// its deprecated aliases. skip counts exported wrapper frames between the
// user call site and this function.
func internalAssertError(skip int, condition string, extras ...any) *Error {
	loc := locate(skip)
	msg := "please report a bug to xgx."
	if detail := sprint(extras...); detail != "" {
		msg += " " + detail
	}
	return NewConditionError(loc.File, loc.Line, condition, msg, captureBacktrace(skip+1), nil)
}

// Check validates a condition on user input. It returns nil when cond holds.
// When cond is false it returns an *Error at the call site whose message is
// the rendered extras or, if none were supplied, a generated fallback naming
// the condition literally:
//
//	Check(n >= 0, "n >= 0")
//	// → "Expected n >= 0 to be true, but got false. (Could this error
//	//    message be improved? If so, please report an enhancement request
//	//    to xgx.)"
//
// Prefer an explicit message; the fallback exists so no check site ever
// raises a bare, contextless failure.
func Check(cond bool, condition string, extras ...any) error {
	if cond {
		return nil
	}
	msg := IfEmptyThen(
		sprint(extras...),
		"Expected "+condition+" to be true, but got false. "+
			"(Could this error message be improved? If so, please report an "+
			"enhancement request to xgx.)",
	)
	return NewErrorAt(locate(0), msg)
}

// Assert is the legacy zero-detail assertion spelling.
//
// Deprecated: Assert kept being mistaken for user error checking. Use
// InternalAssert to flag an internal invariant failure, or Check to validate
// user input.
func Assert(cond bool, condition string) error {
	if cond {
		return nil
	}
	return internalAssertError(1, condition)
}

// AssertMsg is the legacy variadic assertion spelling.
//
// Deprecated: InternalAssert supports both zero-detail and variadic calls;
// use it directly (or Check for user input validation).
func AssertMsg(cond bool, condition string, extras ...any) error {
	if cond {
		return nil
	}
	return internalAssertError(1, condition, extras...)
}
