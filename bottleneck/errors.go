package bottleneck

import "errors"

// Sentinel errors for bottleneck operations (SPEC §7: precondition
// violations are fatal).
var (
	// ErrAlreadyMarked indicates MarkRootPath was called while another
	// path is already marked; at most one path may be marked at a time.
	ErrAlreadyMarked = errors.New("bottleneck: a root path is already marked")

	// ErrNothingMarked indicates UnmarkRootPath was called with no path
	// currently marked.
	ErrNothingMarked = errors.New("bottleneck: no root path is marked")
)
