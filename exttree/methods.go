package exttree

// Root returns the tree's root vertex ID.
func (t *Tree) Root() string { return t.root }

// Shape returns the tree's initial-component classification.
func (t *Tree) Shape() InitialShape { return t.shape }

// Leaves returns the current leaves. The root stays at index 0 for the
// tree's whole lifetime, also once it has children; removing a leaf moves
// the last leaf into the freed position, so the order is not strictly the
// order in which vertices became leaves.
func (t *Tree) Leaves() []string {
	out := make([]string, len(t.leaves))
	copy(out, t.leaves)

	return out
}

// NLeaves returns the number of current leaves.
func (t *Tree) NLeaves() int { return len(t.leaves) }

// LeafPos returns the position of leaf in the leaves array, and whether it
// is currently a leaf.
func (t *Tree) LeafPos(leaf string) (int, bool) {
	p, ok := t.leafPos[leaf]

	return p, ok
}

// TreeDeg returns the degree of v in the current extension tree (0 if v is
// not in the tree).
func (t *Tree) TreeDeg(v string) int { return t.treeDeg[v] }

// InnerNodes returns the tree's current inner (non-leaf, non-root) vertices
// in no particular order.
func (t *Tree) InnerNodes() []string {
	out := make([]string, 0, len(t.innerSet))
	for v := range t.innerSet {
		out = append(out, v)
	}

	return out
}

// ParentNode returns the parent of v and true, or ("", false) if v is the
// root or not in the tree.
func (t *Tree) ParentNode(v string) (string, bool) {
	p, ok := t.parentNode[v]

	return p, ok
}

// ParentEdgeCost returns the cost of the edge from v to its parent.
func (t *Tree) ParentEdgeCost(v string) float64 { return t.parentEdgeCost[v] }

// Depth returns the root-to-v path length.
func (t *Tree) Depth(v string) int { return t.depth[v] }

// TreeDepth returns the length of the longest root-to-leaf path.
func (t *Tree) TreeDepth() int { return t.treeDepth }

// TreeCost returns the sum of edge costs currently in the tree.
func (t *Tree) TreeCost() float64 { return t.treeCost }

// IsInTree reports whether v is any vertex (leaf, inner, or root) of the
// current tree.
func (t *Tree) IsInTree(v string) bool {
	if v == t.root {
		return true
	}
	_, isLeaf := t.leafPos[v]

	return isLeaf || t.innerSet[v]
}

// AttachLeaf adds a new leaf child of parent via an edge of the given cost.
// parent must already be in the tree; if parent was itself a leaf, it is
// promoted to an inner node (its degree was 1, becomes 2).
func (t *Tree) AttachLeaf(parent, leaf string, edgeCost float64) error {
	if !t.IsInTree(parent) {
		return ErrParentNotInTree
	}
	if t.IsInTree(leaf) {
		return ErrLeafAlreadyInTree
	}

	if pos, wasLeaf := t.leafPos[parent]; wasLeaf && parent != t.root {
		t.removeFromLeaves(pos)
		t.innerSet[parent] = true
	} else if wasLeaf && parent == t.root {
		// Root stays addressable at position 0 in leaves only while it has
		// no children; once it gains one it is logically inner but, per
		// SPEC §3, "the root occupies position 0 ... and never moves" for
		// the initial component, so it is left in leaves and simply
		// degree-bumped. Callers must not treat root's presence in Leaves()
		// as a leafhood guarantee once TreeDeg(root) > 1.
	}

	t.treeDeg[parent]++
	t.treeDeg[leaf] = 1
	t.parentNode[leaf] = parent
	t.parentEdgeCost[leaf] = edgeCost
	t.depth[leaf] = t.depth[parent] + 1
	if t.depth[leaf] > t.treeDepth {
		t.treeDepth = t.depth[leaf]
	}
	t.treeCost += edgeCost

	t.leafPos[leaf] = len(t.leaves)
	t.leaves = append(t.leaves, leaf)

	return nil
}

// DetachLeaf removes leaf from the tree, undoing exactly what AttachLeaf
// did. If the parent's degree drops back to 1 (and the parent is not the
// root), the parent is demoted back to a leaf, appended at the end of the
// leaves array (it did not occupy a stable position while inner).
func (t *Tree) DetachLeaf(leaf string) error {
	if leaf == t.root {
		return ErrDetachRoot
	}
	pos, ok := t.leafPos[leaf]
	if !ok {
		return ErrLeafNotFound
	}

	parent := t.parentNode[leaf]
	cost := t.parentEdgeCost[leaf]

	t.removeFromLeaves(pos)
	delete(t.parentNode, leaf)
	delete(t.parentEdgeCost, leaf)
	delete(t.depth, leaf)
	delete(t.treeDeg, leaf)
	t.treeCost -= cost

	t.treeDeg[parent]--
	if t.treeDeg[parent] == 1 && parent != t.root && t.innerSet[parent] {
		delete(t.innerSet, parent)
		t.leafPos[parent] = len(t.leaves)
		t.leaves = append(t.leaves, parent)
	}

	t.recomputeTreeDepth()

	return nil
}

// removeFromLeaves deletes the leaf at pos from t.leaves, swapping the last
// element into its place and fixing up leafPos (order among the remaining
// elements other than the displaced last one is preserved).
func (t *Tree) removeFromLeaves(pos int) {
	last := len(t.leaves) - 1
	removed := t.leaves[pos]
	delete(t.leafPos, removed)
	if pos != last {
		t.leaves[pos] = t.leaves[last]
		t.leafPos[t.leaves[pos]] = pos
	}
	t.leaves = t.leaves[:last]
}

func (t *Tree) recomputeTreeDepth() {
	max := 0
	for _, l := range t.leaves {
		if d := t.depth[l]; d > max {
			max = d
		}
	}
	t.treeDepth = max
}

// TakeSnapshot copies the observable state of the tree for later comparison
// via Equal.
func (t *Tree) TakeSnapshot() Snapshot {
	leaves := make([]string, len(t.leaves))
	copy(leaves, t.leaves)
	deg := make(map[string]int, len(t.treeDeg))
	for k, v := range t.treeDeg {
		deg[k] = v
	}
	parent := make(map[string]string, len(t.parentNode))
	for k, v := range t.parentNode {
		parent[k] = v
	}

	return Snapshot{Leaves: leaves, TreeDeg: deg, ParentNode: parent, TreeDepth: t.treeDepth, TreeCost: t.treeCost}
}

// Equal reports whether two snapshots hold the same set of leaves (their
// order is ignored), tree depth, tree cost, tree_deg and parent_node. A
// Snapshot records no stack counts, so none are compared.
func (a Snapshot) Equal(b Snapshot) bool {
	if len(a.Leaves) != len(b.Leaves) || a.TreeDepth != b.TreeDepth || a.TreeCost != b.TreeCost {
		return false
	}
	aSet := make(map[string]bool, len(a.Leaves))
	for _, l := range a.Leaves {
		aSet[l] = true
	}
	for _, l := range b.Leaves {
		if !aSet[l] {
			return false
		}
	}
	if len(a.TreeDeg) != len(b.TreeDeg) {
		return false
	}
	for k, v := range a.TreeDeg {
		if b.TreeDeg[k] != v {
			return false
		}
	}
	if len(a.ParentNode) != len(b.ParentNode) {
		return false
	}
	for k, v := range a.ParentNode {
		if b.ParentNode[k] != v {
			return false
		}
	}

	return true
}
