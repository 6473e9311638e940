package pcmark

import (
	"github.com/stpkit/extreduce/exttree"
	"github.com/stpkit/extreduce/stpgraph"
)

// maxVisits bounds how many incident edges MarkFromVertex inspects at each
// hop, keeping the cache's cost independent of vertex degree on dense
// instances.
const maxVisits = 20

// Cache is the prize-collecting special-distance mark cache bound to one
// graph and its current extension tree.
type Cache struct {
	g    *stpgraph.Graph
	tree *exttree.Tree

	marks  map[string]float64 // vertex -> cheapest marked SD found so far
	order  []string           // marked vertices in mark order, for Unmark
	active bool
	start  string
}

// NewCache binds a Cache to g and tree.
func NewCache(g *stpgraph.Graph, tree *exttree.Tree) *Cache {
	return &Cache{g: g, tree: tree, marks: make(map[string]float64)}
}
