package extreduce

import (
	"github.com/stpkit/extreduce/bottleneck"
	"github.com/stpkit/extreduce/exttree"
	"github.com/stpkit/extreduce/pcmark"
	"github.com/stpkit/extreduce/stpgraph"
)

// bottleneckTrackerFor binds a bottleneck.Tracker to tree, wiring g as the
// prize-collecting source only when pc is enabled (*stpgraph.Graph already
// satisfies bottleneck.PrizeSource).
func bottleneckTrackerFor(tree *exttree.Tree, g *stpgraph.Graph, pc bool) *bottleneck.Tracker {
	if !pc {
		return bottleneck.NewTracker(tree, nil)
	}

	return bottleneck.NewTracker(tree, g)
}

// newPcCache binds a pcmark.Cache to g and tree.
func newPcCache(g *stpgraph.Graph, tree *exttree.Tree) *pcmark.Cache {
	return pcmark.NewCache(g, tree)
}

// edgeIDBetween scans a's incident edges for one reaching b, returning its
// ID. Used only by the equality rule-out to forbid real graph edges along
// a tree path (SPEC §4.E); tree edges always have a backing graph edge
// since the extension tree is built from the graph's own adjacency.
func edgeIDBetween(g *stpgraph.Graph, a, b string) (string, bool) {
	for _, e := range g.Neighbors(a) {
		if e.From == b || e.To == b {
			return e.ID, true
		}
	}

	return "", false
}
