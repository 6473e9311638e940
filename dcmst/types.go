package dcmst

import "github.com/stpkit/extreduce/csrdepot"

// cEdge is one candidate tree edge produced while inserting a node; tail
// and head are positions in the owning leaves array.
type cEdge struct {
	tail, head int
	cost       float64
}

// Kernel is a reusable, non-re-entrant arena for dynamic-cardinality MST
// construction. Allocate one Kernel per engine instance sized to the
// largest MST it will ever need to build (SPEC §5: "the DCMST adjacency
// buffer is reused across every call and must be at least max_n_leaves+1
// wide").
type Kernel struct {
	maxNodes int

	edgestore []cEdge
	nodemark  []bool

	out  *csrdepot.CSR // current "in-place" output, nil until the first AddNode
	busy bool          // guards against GetExtWeight racing an in-flight AddNodeInplace
}

// NewKernel allocates a Kernel whose scratch arena can hold an MST of up to
// maxNLeaves+1 nodes (a prior MST of maxNLeaves nodes plus the new node).
func NewKernel(maxNLeaves int) *Kernel {
	return &Kernel{
		maxNodes:  maxNLeaves,
		edgestore: make([]cEdge, maxNLeaves+1),
		nodemark:  make([]bool, maxNLeaves+1),
	}
}
