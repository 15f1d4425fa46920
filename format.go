// format.go — fmt.Formatter implementation for *Error.
//
// Behavior:
//
//	%s, %v   → backtrace-free message (Error()); the user-default form.
//	%+v      → complete message: backtrace (if captured) + message stack.
//	%q       → quoted backtrace-free message.
//
// Rationale:
//   - Keep core free of logging policy; only fmt formatting.
//   - The two verbs mirror the two accessors exactly, so a boundary that logs
//     with %+v and replies to users with %v follows the surfacing contract
//     without extra plumbing.
package tensorerror

import (
	"fmt"
	"io"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			// ignore write errors in formatting paths
			_, _ = io.WriteString(s, e.Message())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

var _ fmt.Formatter = (*Error)(nil)
