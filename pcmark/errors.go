package pcmark

import "errors"

// Sentinel errors for pcmark operations (SPEC §7: precondition violations
// are fatal).
var (
	// ErrAlreadyActive indicates MarkFromVertex was called while another
	// start vertex is already active.
	ErrAlreadyActive = errors.New("pcmark: a start vertex is already active")

	// ErrNotActive indicates Unmark was called with no start vertex
	// active.
	ErrNotActive = errors.New("pcmark: no start vertex is active")

	// ErrWrongStartVertex indicates Unmark was called with a vertex other
	// than the one MarkFromVertex activated.
	ErrWrongStartVertex = errors.New("pcmark: unmark vertex does not match the active start vertex")
)
