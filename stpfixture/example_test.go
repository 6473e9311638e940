package stpfixture_test

import (
	"fmt"
	"math/rand"

	"github.com/stpkit/extreduce/stpfixture"
)

// ExampleStar demonstrates a fixed-weight star fixture.
func ExampleStar() {
	g, _ := stpfixture.Star(4, stpfixture.WithWeightFn(func(_ *rand.Rand) float64 { return 1.0 }))
	fmt.Println(g.VertexCount(), g.EdgeCount())

	// Output:
	// 4 3
}
