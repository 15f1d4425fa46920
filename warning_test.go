// warning_test.go — handler slot lifecycle and dispatch behavior.
//
// These tests replace the process-wide handler, so none of them runs in
// parallel; each restores the previous handler via SetWarningHandler's
// return value.
package tensorerror

import (
	"strings"
	"testing"
)

func TestWarn_DispatchesExactlyOnce(t *testing.T) {
	var calls int
	var gotLoc SourceLocation
	var gotMsg string
	prev := SetWarningHandler(func(loc SourceLocation, msg string) {
		calls++
		gotLoc, gotMsg = loc, msg
	})
	defer SetWarningHandler(prev)

	Warn("tensor is non-contiguous;", "copying")

	if calls != 1 {
		t.Fatalf("handler calls: want=1 got=%d", calls)
	}
	if gotMsg != "tensor is non-contiguous; copying" {
		t.Fatalf("message: got=%q", gotMsg)
	}
	// The call site was captured automatically.
	if !strings.Contains(gotLoc.Function, "TestWarn_DispatchesExactlyOnce") {
		t.Fatalf("location function: got=%q", gotLoc.Function)
	}
	if !strings.HasSuffix(gotLoc.File, "warning_test.go") || gotLoc.Line == 0 {
		t.Fatalf("location file/line: got=%s:%d", gotLoc.File, gotLoc.Line)
	}
}

func TestWarnAt_ExplicitLocation(t *testing.T) {
	var gotLoc SourceLocation
	prev := SetWarningHandler(func(loc SourceLocation, _ string) { gotLoc = loc })
	defer SetWarningHandler(prev)

	want := SourceLocation{Function: "foo", File: "bar.ext", Line: 42}
	WarnAt(want, "m")
	if gotLoc != want {
		t.Fatalf("location passed through: want=%+v got=%+v", want, gotLoc)
	}
}

func TestSetWarningHandler_ReturnsPrevious(t *testing.T) {
	marker := 0
	first := func(SourceLocation, string) { marker = 1 }
	second := func(SourceLocation, string) { marker = 2 }

	orig := SetWarningHandler(first)
	defer SetWarningHandler(orig)

	prev := SetWarningHandler(second)
	prev(SourceLocation{}, "")
	if marker != 1 {
		t.Fatalf("returned handler is not the previously installed one")
	}
	WarnAt(SourceLocation{}, "")
	if marker != 2 {
		t.Fatalf("replacement handler not installed")
	}
}

func TestSetWarningHandler_NilRestoresDefault(t *testing.T) {
	orig := SetWarningHandler(func(SourceLocation, string) {})
	defer SetWarningHandler(orig)

	SetWarningHandler(nil)
	// Dispatch goes through the default print handler; the point here is
	// that the slot never holds nil.
	WarnAt(SourceLocation{Function: "f", File: "f.go", Line: 1}, "restored")
}

func TestPrintWarning_ToleratesAnyMessage(t *testing.T) {
	// Default handler must not panic regardless of content.
	loc := SourceLocation{Function: "f", File: "f.go", Line: 1}
	for _, msg := range []string{"", "plain", "with\nnewline", "ctrl \x00\x1b[31m chars", "%d not a format"} {
		PrintWarning(loc, msg)
	}
}
