package mldist

import "errors"

// Sentinel errors for mldist operations. These are precondition violations
// (SPEC §7): fatal, non-recoverable programmer errors, never part of
// ordinary control flow.
var (
	// ErrNoLevels indicates an operation that requires a top level was
	// called on an empty store.
	ErrNoLevels = errors.New("mldist: no levels on stack")

	// ErrLevelSealed indicates a mutation was attempted on a level that has
	// already been closed with LevelCloseTop.
	ErrLevelSealed = errors.New("mldist: top level is sealed")

	// ErrNoEmptySlot indicates a slot operation was attempted with no
	// pending (base-set-but-unfilled) slot.
	ErrNoEmptySlot = errors.New("mldist: no empty slot in progress")

	// ErrSlotCapacityExceeded indicates a level's maxSlots bound was
	// exceeded.
	ErrSlotCapacityExceeded = errors.New("mldist: level slot capacity exceeded")

	// ErrBaseNotFound names the case of a base vertex with no filled slot in
	// the top level. TopTargetDist and TopTargetDists do not return it: they
	// report that case as FarAway and as ok == false respectively.
	ErrBaseNotFound = errors.New("mldist: base vertex has no slot in top level")
)
