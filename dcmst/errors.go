package dcmst

import "errors"

// Sentinel errors for dcmst operations (SPEC §7).
var (
	// ErrInvalidInput indicates the adjacency-cost vector's length does not
	// equal the prior MST's node count plus one.
	ErrInvalidInput = errors.New("dcmst: invalid input: |a| != k+1")

	// ErrBufferTooSmall indicates a requested MST size exceeds the
	// kernel's preallocated arena (a resource-exhaustion, fatal error per
	// SPEC §7).
	ErrBufferTooSmall = errors.New("dcmst: scratch buffer too small for requested node count")

	// ErrReentrant indicates GetExtWeight was called while an
	// AddNodeInplace sequence is in progress on the same kernel, violating
	// the arena's non-reentrancy contract (SPEC §9).
	ErrReentrant = errors.New("dcmst: kernel is not re-entrant")

	// ErrNoPriorOutput indicates AddNodeInplace was called before any
	// AddNode call established a current output to extend.
	ErrNoPriorOutput = errors.New("dcmst: no prior output to extend in place")
)
