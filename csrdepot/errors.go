package csrdepot

import "errors"

// Sentinel errors for csrdepot operations (SPEC §7: precondition violations
// are fatal and non-recoverable).
var (
	// ErrEmptyDepot indicates an operation requiring a top CSR was called
	// on an empty depot.
	ErrEmptyDepot = errors.New("csrdepot: depot has no CSRs")

	// ErrInvalidNodeCount indicates AddEmptyTopTree was called with
	// nnodes < 1.
	ErrInvalidNodeCount = errors.New("csrdepot: nnodes must be >= 1")

	// ErrNotMutable indicates GetEmptyTop was called after the top CSR had
	// already been sealed with EmptyTopSetMarked.
	ErrNotMutable = errors.New("csrdepot: CSR is not the mutable top")
)
