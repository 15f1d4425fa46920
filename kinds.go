// kinds.go — classification tags for xgx-tensor-error.
//
// Intent:
//   - The tag is the ONLY discriminator catch sites need: dispatch never
//     requires inspecting message text.
//   - Keep the set deliberately tiny. This core distinguishes exactly one
//     specialization, out-of-bounds indexing, because a host-language
//     boundary wants to convert it to its own index exception; everything
//     else is a general failure.
//   - Kinds are stringly-typed for stability across serialization boundaries;
//     higher layers may define their own kinds, the core reserves only these.
//
// Conventions (documented, not enforced here):
//   - Kinds are lowercase snake_case ASCII.
//   - Avoid the empty string for custom kinds; it is never a built-in.
package tensorerror

// Kind classifies failures for catch-site dispatch.
type Kind string

const (
	// KindError tags a general failure: anything not specifically classified.
	KindError Kind = "error"

	// KindIndexError tags an out-of-bounds index failure that could
	// reasonably only be detected lazily inside a kernel (e.g., advanced
	// indexing), so a higher layer can handle it specially.
	KindIndexError Kind = "index_error"
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
var allBuiltinKinds = []Kind{
	KindError,
	KindIndexError,
}

// builtinKindSet provides O(1) membership checks for built-ins.
var builtinKindSet = map[Kind]struct{}{
	KindError:      {},
	KindIndexError: {},
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in core kinds.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}

// label is the human-readable type label GetExceptionString prepends.
func (k Kind) label() string {
	switch k {
	case KindIndexError:
		return "tensorerror.IndexError"
	default:
		return "tensorerror.Error"
	}
}
