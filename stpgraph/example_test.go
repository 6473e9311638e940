package stpgraph_test

import (
	"fmt"

	"github.com/stpkit/extreduce/stpgraph"
)

// ExampleGraph demonstrates basic construction and terminal/prize tagging.
func ExampleGraph() {
	g := stpgraph.NewGraph()
	g.AddEdge("0", "1", 1.0)
	g.AddEdge("1", "2", 1.0)
	g.AddEdge("0", "2", 1.5)
	_ = g.SetTerminal("0", true)
	_ = g.SetTerminal("2", true)

	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.IsTerm("0"), g.IsTerm("1"))

	w, ok := g.EdgeWeight("0", "2")
	fmt.Println(w, ok)

	// Output:
	// 3 3
	// true false
	// 1.5 true
}
