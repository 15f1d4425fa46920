// location.go — source locations for xgx-tensor-error.
//
// Design:
//   • SourceLocation is an immutable (function, file, line) value, owned by
//     value wherever embedded; it only ever reaches an *Error as part of a
//     composed message string.
//   • locate() resolves the single frame of interest via runtime.Callers +
//     runtime.CallersFrames so inlined call sites report correctly.
//   • Capture happens ONLY on failing paths: the raise/check helpers test
//     their condition before calling locate, so the success path pays nothing.
//
// References:
//   - runtime.Callers skip semantics (0 = Callers, 1 = its caller)
//   - Prefer CallersFrames over FuncForPC for inlined frames
package tensorerror

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"
)

// SourceLocation identifies where a failure was classified.
// Function names are fully qualified (pkg.Func or recv.method) as reported by
// the runtime; File is the path the runtime recorded at compile time.
type SourceLocation struct {
	Function string
	File     string
	Line     uint32
}

// String renders the stable location format used in composed messages and in
// the default warning output: "<function> at <file>:<line>".
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s at %s:%d", l.Function, l.File, l.Line)
}

// IsZero reports whether l carries no information (capture failed or the
// location was never filled in).
func (l SourceLocation) IsZero() bool {
	return l.Function == "" && l.File == "" && l.Line == 0
}

// locate captures the call site 'skip' frames above locate's caller.
// locate(0) → the caller of the function that invoked locate.
//
// Skip accounting:
//   • +1 for runtime.Callers itself
//   • +1 for locate
//   • +1 to land on the caller's caller (the user-visible call site of the
//     raise/check/warn helper that invoked us)
func locate(skip int) SourceLocation {
	var pcs [1]uintptr
	n := runtime.Callers(skip+3, pcs[:])
	if n == 0 {
		return SourceLocation{}
	}
	fr, _ := runtime.CallersFrames(pcs[:n]).Next()
	// Lines are non-negative in practice; a conversion failure degrades to 0
	// rather than failing the failure path.
	line, err := safecast.Conv[uint32](fr.Line)
	if err != nil {
		line = 0
	}
	return SourceLocation{
		Function: fr.Function,
		File:     fr.File,
		Line:     line,
	}
}
