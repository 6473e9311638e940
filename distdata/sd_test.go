package distdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpkit/extreduce/distdata"
	"github.com/stpkit/extreduce/stpgraph"
)

func triangle(t *testing.T) *stpgraph.Graph {
	g := stpgraph.NewGraph()
	_, err := g.AddEdge("0", "1", 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "2", 1.5)
	require.NoError(t, err)

	return g
}

func TestSdDouble_triangle(t *testing.T) {
	g := triangle(t)
	s, err := distdata.NewStore(g)
	require.NoError(t, err)

	assert.Equal(t, 1.5, s.SdDouble("0", "2"))
	assert.Equal(t, 1.5, s.SdDouble("2", "0"))
	assert.Equal(t, float64(0), s.SdDouble("0", "0"))
}

func TestSdDouble_unknownVertex(t *testing.T) {
	g := triangle(t)
	s, err := distdata.NewStore(g)
	require.NoError(t, err)

	assert.Equal(t, distdata.Unknown, s.SdDouble("0", "ghost"))
}

func TestSdDouble_unreachable(t *testing.T) {
	g := stpgraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	s, err := distdata.NewStore(g)
	require.NoError(t, err)

	assert.Equal(t, distdata.FarAway, s.SdDouble("a", "b"))
}

func TestSdDoubleForbidden_reroutesAroundForbiddenEdge(t *testing.T) {
	g := triangle(t)
	s, err := distdata.NewStore(g)
	require.NoError(t, err)

	// Forbidding the direct 0-2 edge forces the 0-1-2 route (cost 2.0).
	direct := edgeBetween(t, g, "0", "2")
	got := s.SdDoubleForbidden(1.5, map[string]bool{direct: true}, "0", "2")
	assert.Equal(t, 2.0, got)
}

func edgeBetween(t *testing.T, g *stpgraph.Graph, u, v string) string {
	for _, e := range g.Edges() {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e.ID
		}
	}
	t.Fatalf("no edge between %s and %s", u, v)

	return ""
}
