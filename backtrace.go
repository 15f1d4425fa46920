// backtrace.go — backtrace capture for the failure path.
//
// The *Error type stores the backtrace as an opaque, preformatted text blob:
// it never captures anything itself, which keeps construction form 1 usable
// with backtraces produced elsewhere (or with ""). This file is the producer
// the raise/assert helpers wire into that slot.
//
// Design goals:
//   - Correctness: runtime.Callers + runtime.CallersFrames so inlined frames
//     resolve accurately.
//   - Pragmatic performance: bounded depth; runs only after a condition has
//     already failed, so capture cost is never on the success path.
package tensorerror

import (
	"fmt"
	"runtime"
	"strings"
)

// frame is a single resolved call site in a captured backtrace.
type frame struct {
	File     string
	Line     int
	Function string
}

const (
	// backtraceMaxDepth is a conservative bound that captures meaningful
	// context without excessive work on exceptional paths.
	backtraceMaxDepth = 64
)

// captureFrames captures up to backtraceMaxDepth frames, skipping 'skip'
// frames above captureFrames's caller.
//
// Skip accounting (runtime.Callers: 0 = Callers itself, 1 = its caller):
//   • +1 for captureFrames
//   • +1 so skip=0 lands on captureFrames's caller
// captureBacktrace adds one more, so captureBacktrace(0) starts at ITS caller.
func captureFrames(skip int) []frame {
	pc := make([]uintptr, backtraceMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make([]frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, frame{File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}

// captureBacktrace renders the current call stack, skipping 'skip' frames
// above the caller, as the text blob stored in an *Error:
//
//	backtrace:
//	  pkg.Func file.go:123
//	  pkg.Other other.go:45
//
// One frame per line, most recent first, trailing newline included.
func captureBacktrace(skip int) string {
	frames := captureFrames(skip + 1)
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("backtrace:\n")
	for _, fr := range frames {
		fmt.Fprintf(&b, "  %s %s:%d\n", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}
