package exttree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpkit/extreduce/exttree"
)

func TestAttachDetach_roundTrip(t *testing.T) {
	tree := exttree.NewTree("root", exttree.InitialEdge)
	before := tree.TakeSnapshot()

	require.NoError(t, tree.AttachLeaf("root", "a", 1.0))
	require.NoError(t, tree.AttachLeaf("a", "b", 2.0))
	require.NoError(t, tree.AttachLeaf("a", "c", 3.0))

	assert.Equal(t, 3, tree.TreeDeg("a")) // a: parent edge + 2 children
	assert.Equal(t, 2, tree.TreeDepth())
	assert.InDelta(t, 6.0, tree.TreeCost(), 1e-9)

	require.NoError(t, tree.DetachLeaf("c"))
	require.NoError(t, tree.DetachLeaf("b"))
	require.NoError(t, tree.DetachLeaf("a"))

	after := tree.TakeSnapshot()
	assert.True(t, before.Equal(after))
}

func TestAttachLeaf_rejectsUnknownParentOrDuplicateLeaf(t *testing.T) {
	tree := exttree.NewTree("root", exttree.InitialEdge)
	assert.ErrorIs(t, tree.AttachLeaf("ghost", "x", 1.0), exttree.ErrParentNotInTree)

	require.NoError(t, tree.AttachLeaf("root", "x", 1.0))
	assert.ErrorIs(t, tree.AttachLeaf("root", "x", 1.0), exttree.ErrLeafAlreadyInTree)
}

func TestDetachLeaf_rejectsRootAndUnknown(t *testing.T) {
	tree := exttree.NewTree("root", exttree.InitialEdge)
	assert.ErrorIs(t, tree.DetachLeaf("root"), exttree.ErrDetachRoot)
	assert.ErrorIs(t, tree.DetachLeaf("ghost"), exttree.ErrLeafNotFound)
}

func TestDetachLeaf_demotesParentBackToLeaf(t *testing.T) {
	tree := exttree.NewTree("root", exttree.InitialEdge)
	require.NoError(t, tree.AttachLeaf("root", "a", 1.0))
	require.NoError(t, tree.AttachLeaf("a", "b", 1.0))
	require.NoError(t, tree.AttachLeaf("a", "c", 1.0))

	require.NoError(t, tree.DetachLeaf("c"))
	require.NoError(t, tree.DetachLeaf("b"))

	_, isLeaf := tree.LeafPos("a")
	assert.True(t, isLeaf)
	assert.Equal(t, 1, tree.TreeDeg("a"))
}
