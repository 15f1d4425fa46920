// kinds_test.go — built-in tag set stability.
package tensorerror

import "testing"

func TestBuiltinKinds_StableAndDefensive(t *testing.T) {
	t.Parallel()

	ks := BuiltinKinds()
	if len(ks) != 2 || ks[0] != KindError || ks[1] != KindIndexError {
		t.Fatalf("unexpected builtin set: %v", ks)
	}
	// Mutating the returned slice must not affect later calls.
	ks[0] = Kind("mutated")
	if BuiltinKinds()[0] != KindError {
		t.Fatalf("BuiltinKinds exposed internal storage")
	}
}

func TestKind_IsBuiltin(t *testing.T) {
	t.Parallel()

	if !KindError.IsBuiltin() || !KindIndexError.IsBuiltin() {
		t.Fatalf("core kinds must be builtin")
	}
	if Kind("").IsBuiltin() || Kind("custom").IsBuiltin() {
		t.Fatalf("empty/custom kinds must not be builtin")
	}
}
