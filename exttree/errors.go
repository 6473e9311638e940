package exttree

import "errors"

// Sentinel errors for exttree operations (SPEC §7: precondition violations
// are fatal).
var (
	// ErrParentNotInTree indicates AttachLeaf was called with a parent not
	// currently part of the tree.
	ErrParentNotInTree = errors.New("exttree: parent vertex not in tree")

	// ErrLeafAlreadyInTree indicates AttachLeaf was called with a leaf ID
	// already present in the tree.
	ErrLeafAlreadyInTree = errors.New("exttree: leaf already in tree")

	// ErrLeafNotFound indicates DetachLeaf was called with a leaf ID not
	// present among the current leaves.
	ErrLeafNotFound = errors.New("exttree: leaf not found")

	// ErrDetachRoot indicates an attempt to detach the tree root, which has
	// no parent edge to remove.
	ErrDetachRoot = errors.New("exttree: cannot detach the tree root")
)
