// warning.go — non-fatal diagnostics, dispatched to a replaceable handler.
//
// Model:
//   - One process-wide handler slot, defaulting to PrintWarning.
//   - Dispatch is synchronous and never unwinds anything; a warning is
//     advisory, execution continues at the warn site.
//   - The slot has exactly two conceptual states, "default" and "custom",
//     and transitions only via SetWarningHandler.
//
// Concurrency contract: concurrent dispatch is safe; replacing the handler
// while warnings may be in flight is not, and is NOT guarded here. Install
// handlers once, early, during process setup, or synchronize externally.
package tensorerror

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Handler receives every dispatched warning: the capture site and the
// message. If the handler itself fails, that is the handler's problem; this
// layer does not retry or escalate.
type Handler func(loc SourceLocation, msg string)

// warningHandler is the process-wide slot. Reads race-free against each
// other; writes require the SetWarningHandler precondition.
var warningHandler Handler = PrintWarning

// Warn dispatches an advisory diagnostic from the call site, which is
// captured automatically. Parts render space-joined (see sprint).
//
//	tensorerror.Warn("norm is deprecated, use linalg.Norm instead")
func Warn(parts ...any) {
	WarnAt(locate(0), sprint(parts...))
}

// WarnAt dispatches an advisory diagnostic with an explicit capture site.
// It invokes the currently installed handler synchronously and returns.
func WarnAt(loc SourceLocation, msg string) {
	warningHandler(loc, msg)
}

// SetWarningHandler replaces the process-wide handler and returns the
// previous one, so embedders and tests can restore it:
//
//	prev := tensorerror.SetWarningHandler(mine)
//	defer tensorerror.SetWarningHandler(prev)
//
// A nil handler reinstalls the default. Must not race in-flight WarnAt
// calls (documented precondition, not enforced).
func SetWarningHandler(h Handler) Handler {
	prev := warningHandler
	if h == nil {
		h = PrintWarning
	}
	warningHandler = h
	return prev
}

// warnTag renders the "Warning:" prefix; color degrades to plain text on
// non-terminal outputs.
var warnTag = color.New(color.FgYellow, color.Bold)

// PrintWarning is the default handler: it formats the message and its
// capture site into one human-readable line on stderr. The write is
// best-effort; a failed write is not escalated.
func PrintWarning(loc SourceLocation, msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s (%s)\n", warnTag.Sprint("Warning:"), msg, loc)
}
