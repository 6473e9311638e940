package bottleneck

import "github.com/stpkit/extreduce/exttree"

// PrizeSource supplies the prize-collecting terminal/prize attributes the
// tracker subtracts while accumulating bottleneck distance. A
// *stpgraph.Graph satisfies this interface; pass nil for the non-PC
// variant.
type PrizeSource interface {
	IsTerm(v string) bool
	Prize(v string) float64
}

// Tracker is the bottleneck tracker bound to one extension tree. dist holds
// bottleneck distances for vertices along the currently marked root path;
// a missing entry means "unmarked" (-1 per SPEC §3 invariants).
type Tracker struct {
	tree   *exttree.Tree
	prizes PrizeSource
	dist   map[string]float64
	marked string // currently marked start vertex, "" if none
}

// NewTracker binds a Tracker to tree. prizes may be nil for the non-PC
// variant.
func NewTracker(tree *exttree.Tree, prizes PrizeSource) *Tracker {
	return &Tracker{tree: tree, prizes: prizes, dist: make(map[string]float64)}
}

// get returns the bottleneck distance stored for v, or -1 if unset.
func (t *Tracker) get(v string) float64 {
	if d, ok := t.dist[v]; ok {
		return d
	}

	return -1
}
