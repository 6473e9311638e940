package stpfixture_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpkit/extreduce/stpfixture"
)

func TestPath(t *testing.T) {
	g, err := stpfixture.Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("0", "2"))
}

func TestPathTooFew(t *testing.T) {
	_, err := stpfixture.Path(1)
	assert.ErrorIs(t, err, stpfixture.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := stpfixture.Star(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	for _, leaf := range []string{"1", "2", "3"} {
		assert.True(t, g.HasEdge("0", leaf))
	}
	assert.False(t, g.HasEdge("1", "2"))
}

func TestComplete(t *testing.T) {
	g, err := stpfixture.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestRandomSparseDeterministic(t *testing.T) {
	g1, err := stpfixture.RandomSparse(8, 0.4, stpfixture.WithSeed(7))
	require.NoError(t, err)
	g2, err := stpfixture.RandomSparse(8, 0.4, stpfixture.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, len(g1.Edges()), len(g2.Edges()))
	for i := 1; i < 8; i++ {
		from, to := strconv.Itoa(i-1), strconv.Itoa(i)
		assert.True(t, g1.HasEdge(from, to), "spanning path edge %s-%s must exist", from, to)
	}
}

func TestRandomSparseNeedsSeed(t *testing.T) {
	_, err := stpfixture.RandomSparse(5, 0.5)
	assert.ErrorIs(t, err, stpfixture.ErrNeedRandSource)
}

func TestRandomSparseInvalidProbability(t *testing.T) {
	_, err := stpfixture.RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, stpfixture.ErrInvalidProbability)
}

func TestTerminalsAndPrizes(t *testing.T) {
	g, err := stpfixture.Star(4,
		stpfixture.WithTerminals(0, 2),
		stpfixture.WithPrizes(map[int]float64{2: 0.4}),
	)
	require.NoError(t, err)
	assert.True(t, g.IsTerm("0"))
	assert.True(t, g.IsTerm("2"))
	assert.False(t, g.IsTerm("1"))
	assert.InDelta(t, 0.4, g.Prize("2"), 1e-12)
	assert.InDelta(t, 0.0, g.Prize("1"), 1e-12)
}
