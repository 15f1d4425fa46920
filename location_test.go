// location_test.go — SourceLocation value semantics and capture.
package tensorerror

import (
	"strings"
	"testing"
)

func TestSourceLocation_String(t *testing.T) {
	t.Parallel()

	loc := SourceLocation{Function: "foo", File: "bar.ext", Line: 42}
	if got := loc.String(); got != "foo at bar.ext:42" {
		t.Fatalf("String: got=%q", got)
	}
}

func TestSourceLocation_IsZero(t *testing.T) {
	t.Parallel()

	if !(SourceLocation{}).IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if (SourceLocation{File: "f.go"}).IsZero() {
		t.Fatalf("partially filled location is not zero")
	}
}

// locateHere exists so the test observes locate the way the raise/check
// helpers use it: one exported-helper frame between user code and locate.
func locateHere() SourceLocation { return locate(0) }

func TestLocate_ResolvesCallerFrame(t *testing.T) {
	t.Parallel()

	loc := locateHere()
	if !strings.Contains(loc.Function, "TestLocate_ResolvesCallerFrame") {
		t.Fatalf("function: got=%q", loc.Function)
	}
	if !strings.HasSuffix(loc.File, "location_test.go") {
		t.Fatalf("file: got=%q", loc.File)
	}
	if loc.Line == 0 {
		t.Fatalf("line should be captured")
	}
}

func TestBacktrace_RenderedFormat(t *testing.T) {
	t.Parallel()

	bt := captureBacktrace(0)
	if !strings.HasPrefix(bt, "backtrace:\n") {
		t.Fatalf("missing header:\n%s", bt)
	}
	if !strings.Contains(bt, "TestBacktrace_RenderedFormat") {
		t.Fatalf("first frames should include the capturing test:\n%s", bt)
	}
	if !strings.HasSuffix(bt, "\n") {
		t.Fatalf("trailing newline expected")
	}
}
