package exttree

// InitialShape classifies the initial component the tree was seeded with,
// distinguishing a single edge, a star (every edge from one center), and a
// general star (mixed degree) — the source's ad hoc predicates collapsed
// into one explicit enum (SPEC_FULL "supplemented features").
type InitialShape int

const (
	// InitialEdge is a single root-to-leaf edge.
	InitialEdge InitialShape = iota
	// InitialStar is every initial edge sharing the same center vertex.
	InitialStar
	// InitialGeneralStar is an initial component with mixed vertex degree.
	InitialGeneralStar
)

// Tree is the shared extension-tree state described in SPEC §3.
type Tree struct {
	root  string
	shape InitialShape

	// leaves holds the currently-leaf vertex IDs, appended as they become
	// leaves (a removal moves the last entry into the freed position);
	// position 0 is the root for the initial component and never
	// moves (SPEC §3).
	leaves   []string
	leafPos  map[string]int
	innerSet map[string]bool

	treeDeg        map[string]int
	parentNode     map[string]string
	parentEdgeCost map[string]float64
	depth          map[string]int

	treeDepth int
	treeCost  float64
}

// NewTree creates a one-vertex tree rooted at root.
func NewTree(root string, shape InitialShape) *Tree {
	t := &Tree{
		root:           root,
		shape:          shape,
		leaves:         []string{root},
		leafPos:        map[string]int{root: 0},
		innerSet:       map[string]bool{},
		treeDeg:        map[string]int{root: 0},
		parentNode:     map[string]string{},
		parentEdgeCost: map[string]float64{},
		depth:          map[string]int{root: 0},
	}

	return t
}

// Snapshot is an immutable copy of the observable parts of a Tree, used by
// tests to verify that a sequence of pushes followed by an equal number of
// pops restores the tree bit-identically (SPEC §8 property 4).
type Snapshot struct {
	Leaves     []string
	TreeDeg    map[string]int
	ParentNode map[string]string
	TreeDepth  int
	TreeCost   float64
}
