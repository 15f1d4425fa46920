// doc.go — package documentation for xgx-tensor-error
//
// Package tensorerror is the structured error, warning, and assertion core of
// the xgx tensor runtime. It turns low-level invariant violations and user
// input errors into a single *Error value carrying a layered message, an
// optional backtrace captured at the original failure site, and an opaque
// caller tag for attributing failures to the operation that raised them.
// It is designed to be:
//   - Cheap on the success path (no capture work until a condition fails)
//   - Rich on the failure path (message stack + backtrace + location)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/retry/recovery rules in core)
//
// # Message Semantics
//
// An *Error carries an ordered MESSAGE STACK: the original failure text first,
// followed by any annotations appended while the error travels up through
// intermediate layers. Fragments render in append order, newline-separated,
// so the outermost annotation reads last:
//
//	err := tensorerror.Raise("matmul: shape mismatch", a, "vs", b)
//	...
//	return tensorerror.Append(err, "while folding batch dimension 2")
//
// Two derived strings are maintained and cached on every mutation:
//
//	Message()                 backtrace (if any) + joined message stack
//	MessageWithoutBacktrace() joined message stack only
//
// Both accessors return previously computed storage and never fail; Error()
// is the backtrace-free form, which is what end users see by default. The
// backtrace is captured once, at the original site, and is never regenerated
// when messages are appended later.
//
// # Classification
//
// Every failure carries a Kind tag. Core ships exactly two:
//
//	+----------------+------------------------------------------------------+
//	| Kind           | Meaning                                              |
//	+----------------+------------------------------------------------------+
//	| KindError      | general failure (default)                            |
//	| KindIndexError | out-of-bounds index, detected lazily inside a kernel |
//	+----------------+------------------------------------------------------+
//
// Catch sites dispatch on the tag (IsIndexError, KindOf), never on message
// text. KindIndexError exists so a higher boundary can convert bounds
// failures specially (e.g., to a host-language index exception) while
// treating everything else uniformly.
//
// # Assertions and Checks
//
// Two helpers guard boolean conditions; both are safe to leave enabled in
// production because failure raises an error value, it never aborts the
// process:
//
//	InternalAssert(cond, "x == 0", "x =", x)  // library bug if it fires;
//	                                          // message asks for a bug report
//	Check(cond, "x == 0", "expected zero x")  // user input validation;
//	                                          // falls back to a generated
//	                                          // message naming the condition
//
// Go has no macro stringification, so the condition's literal text is passed
// explicitly next to the evaluated bool. The bool is inspected first; source
// location and backtrace capture happen only after it is found false.
//
// # Warnings
//
// Warn dispatches a non-fatal diagnostic to a process-wide handler,
// synchronously, without unwinding anything. The default handler prints to
// stderr; SetWarningHandler swaps it (returning the previous handler so tests
// can restore). Replacement must not race in-flight dispatch: callers
// synchronize externally, this layer does not lock.
//
// # Interop
//
//   - errors.Is/As traverse the optional foreign cause kept by From/Append.
//   - fmt: %v and %s render the backtrace-free message; %+v the full message.
//   - GetExceptionString flattens any caught error into "label: message" for
//     boundaries that must carry classification in a plain string.
package tensorerror
