package extreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stpkit/extreduce/extreduce"
	"github.com/stpkit/extreduce/exttree"
	"github.com/stpkit/extreduce/stpgraph"
)

// stubDist is a hand-controlled DistOracle: every pair not explicitly set
// reports unknown (-1), matching the oracle-boundary sentinel.
type stubDist struct {
	pair      map[[2]string]float64
	forbidden map[[2]string]float64
}

func newStubDist() *stubDist {
	return &stubDist{pair: map[[2]string]float64{}, forbidden: map[[2]string]float64{}}
}

func (s *stubDist) set(a, b string, v float64) {
	s.pair[[2]string{a, b}] = v
	s.pair[[2]string{b, a}] = v
}

func (s *stubDist) setForbidden(a, b string, v float64) {
	s.forbidden[[2]string{a, b}] = v
	s.forbidden[[2]string{b, a}] = v
}

func (s *stubDist) SdDouble(u, v string) float64 {
	if val, ok := s.pair[[2]string{u, v}]; ok {
		return val
	}

	return -1
}

func (s *stubDist) SdDoubleForbidden(distEq float64, forbidden map[string]bool, u, v string) float64 {
	if val, ok := s.forbidden[[2]string{u, v}]; ok {
		return val
	}

	return s.SdDouble(u, v)
}

func smallGraph(t *testing.T) *stpgraph.Graph {
	t.Helper()
	g := stpgraph.NewGraph()
	for _, v := range []string{"0", "1", "2", "x"} {
		require.NoError(t, g.AddVertex(v))
	}

	return g
}

// Scenario: a candidate's SD to an ancestor leaf is strictly cheaper than
// the tree bottleneck on the path up to that ancestor, so Stage 1 rules the
// candidate out on the spot, before any component MST is built.
func TestVerticalAddLeaf_AncestorDominationRulesOut(t *testing.T) {
	g := smallGraph(t)
	_, err := g.AddEdge("0", "1", 5.0)
	require.NoError(t, err)
	dist := newStubDist()
	dist.set("2", "0", 1.0) // SD far cheaper than the 5.0 bottleneck on 0->1

	e, err := extreduce.NewEngine(g, dist)
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("0"))
	require.NoError(t, e.LevelInit())

	ruledOut, err := e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "0", Child: "1", Cost: 5.0})
	require.NoError(t, err)
	require.False(t, ruledOut)
	require.NoError(t, e.VerticalClose())
	require.NoError(t, e.LevelClose("1"))

	require.NoError(t, e.LevelInit())
	ruledOut, err = e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: "1", Child: "2", Cost: 5.0})
	require.NoError(t, err)
	require.True(t, ruledOut, "SD(2,0)=1.0 undercuts the 5.0 bottleneck on the 0->1 path")
}

// Scenario: the same setup but with an SD that is clearly more expensive
// than the bottleneck — the candidate survives Stage 1 and gets attached.
func TestVerticalAddLeaf_NoDomination(t *testing.T) {
	g := smallGraph(t)
	_, err := g.AddEdge("0", "1", 5.0)
	require.NoError(t, err)
	dist := newStubDist()
	dist.set("2", "0", 9.0) // far more expensive than the 5.0 bottleneck

	e, err := extreduce.NewEngine(g, dist)
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("0"))
	require.NoError(t, e.LevelInit())
	_, err = e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "0", Child: "1", Cost: 5.0})
	require.NoError(t, err)
	require.NoError(t, e.VerticalClose())
	require.NoError(t, e.LevelClose("1"))

	require.NoError(t, e.LevelInit())
	ruledOut, err := e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: "1", Child: "2", Cost: 5.0})
	require.NoError(t, err)
	require.False(t, ruledOut)
	require.False(t, e.EqHasForbiddenEdges())
}

// Scenario: an SD exactly ties the bottleneck to a non-root ancestor. The
// equality rule-out recomputes the SD with that ancestor's own root-path
// edge forbidden; since the recomputed value still meets the original, the
// rule-out holds and the forbidding edge is recorded. After level_remove
// backtracks past the level that recorded it, the forbidden set is empty
// again (SPEC §8 scenario 5).
func TestEqualityRuleOut_RecordsAndRewindsForbiddenEdges(t *testing.T) {
	g := smallGraph(t)
	_, err := g.AddEdge("0", "1", 2.0) // ancestor "1"'s own root-path edge
	require.NoError(t, err)

	dist := newStubDist()
	dist.set("x", "1", 2.0) // exactly ties the 2.0 bottleneck at ancestor "1"
	dist.setForbidden("x", "1", 2.0)

	e, err := extreduce.NewEngine(g, dist)
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("0"))
	require.NoError(t, e.LevelInit())
	_, err = e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "0", Child: "1", Cost: 2.0})
	require.NoError(t, err)
	require.NoError(t, e.VerticalClose())
	require.NoError(t, e.LevelClose("1"))
	require.False(t, e.EqHasForbiddenEdges())

	require.NoError(t, e.LevelInit())
	ruledOut, err := e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: "0", Child: "x", Cost: 2.0})
	require.NoError(t, err)
	require.True(t, ruledOut)
	require.True(t, e.EqHasForbiddenEdges())

	require.NoError(t, e.LevelRemove())
	require.False(t, e.EqHasForbiddenEdges(), "backtracking past the recording level must rewind the forbidden set")
}

// Scenario: a lone root extended by three levels, each attaching one leaf
// (the chain r-a-b-c), and then popped three times; the tree snapshot before
// and after must be identical (SPEC §8 scenario 4).
func TestPushPopSymmetry(t *testing.T) {
	g := smallGraph(t)
	dist := newStubDist()
	// Every SD comfortably exceeds every tree edge cost so nothing is ever
	// ruled out and every candidate attaches.
	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}} {
		dist.set(pair[0], pair[1], 100.0)
	}

	e, err := extreduce.NewEngine(g, dist)
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("r"))

	before := e.Tree().TakeSnapshot()

	attach := func(parent, child string, cost float64, initial bool) {
		require.NoError(t, e.LevelInit())
		var ruledOut bool
		var err error
		if initial {
			ruledOut, err = e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: parent, Child: child, Cost: cost})
		} else {
			ruledOut, err = e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: parent, Child: child, Cost: cost})
		}
		require.NoError(t, err)
		require.False(t, ruledOut)
		require.NoError(t, e.VerticalClose())
		require.NoError(t, e.HorizontalAdd([]extreduce.CandidateEdge{{Parent: parent, Child: child, Cost: cost}}))
		require.NoError(t, e.LevelClose(child))
	}

	attach("r", "a", 1.0, true)
	attach("a", "b", 1.0, false)
	attach("b", "c", 1.0, false)

	require.NoError(t, e.LevelRemove())
	require.NoError(t, e.LevelRemove())
	require.NoError(t, e.LevelRemove())

	after := e.Tree().TakeSnapshot()
	require.True(t, before.Equal(after), "three pushes followed by three pops must restore the tree exactly")
}

// buildThreeLeafTie drives the engine through an initial edge 0->1 (cost
// 2.0), a rejected sibling "y" that ties the 0-1 bottleneck and gets
// recorded as equality-forbidden, and an accepted sibling "2" (cost 2.0, no
// domination against "1"). The result is a 3-leaf tree (leaves 0, 1, 2)
// whose component MST — edges 0-1 and 0-2, both cost 2.0 — exactly ties the
// 4.0 tree cost, the setup RuleOutPeripheral's 3-leaf equality sub-check
// exists for. dist must already carry any pairwise forbidden special
// distances the caller wants the sub-check to see; this helper adds only
// the fixed values the scaffold itself needs.
func buildThreeLeafTie(t *testing.T, dist *stubDist) *extreduce.Engine {
	t.Helper()
	g := stpgraph.NewGraph()
	for _, v := range []string{"0", "1", "2", "y"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("0", "1", 2.0)
	require.NoError(t, err)

	dist.set("y", "1", 2.0) // ties the 2.0 bottleneck at ancestor "1"
	dist.setForbidden("y", "1", 2.0)
	dist.set("2", "1", 9.0) // no domination, "2" survives Stage 1

	e, err := extreduce.NewEngine(g, dist)
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("0"))

	require.NoError(t, e.LevelInit())
	_, err = e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "0", Child: "1", Cost: 2.0})
	require.NoError(t, err)
	require.NoError(t, e.VerticalClose())
	require.NoError(t, e.LevelClose("1"))
	ruledOut, err := e.RuleOutPeripheral()
	require.NoError(t, err)
	require.False(t, ruledOut)

	require.NoError(t, e.LevelInit())
	ruledOutY, err := e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: "0", Child: "y", Cost: 2.0})
	require.NoError(t, err)
	require.True(t, ruledOutY, "SD(y,1)=2.0 ties the bottleneck and the forbidden-recompute still holds")
	require.True(t, e.EqHasForbiddenEdges())

	ruledOut2, err := e.VerticalAddLeaf(extreduce.CandidateEdge{Parent: "0", Child: "2", Cost: 2.0})
	require.NoError(t, err)
	require.False(t, ruledOut2)
	require.NoError(t, e.VerticalClose())
	require.NoError(t, e.HorizontalAdd([]extreduce.CandidateEdge{{Parent: "0", Child: "2", Cost: 2.0}}))
	require.NoError(t, e.LevelClose("2"))

	require.Equal(t, 3, e.Tree().NLeaves())

	return e
}

// Scenario: the tied 3-leaf component of buildThreeLeafTie, with a cheap
// alternative pairing surviving among the three leaves once the recorded
// equality-forbidden edge is excluded. The 3-leaf equality sub-check
// confirms the tie is a genuine alternative and the tentative rule-out
// stands (SPEC §4.G Stage 2, mstEqComp3RuleOut).
func TestRuleOutPeripheral_ThreeLeafEqualityConfirmsRuleOut(t *testing.T) {
	dist := newStubDist()
	dist.setForbidden("0", "1", 1.0)
	dist.setForbidden("0", "2", 1.0) // sum 2.0 <= the 4.0 tree cost

	e := buildThreeLeafTie(t, dist)

	ruledOut, err := e.RuleOutPeripheral()
	require.NoError(t, err)
	require.True(t, ruledOut)
}

// Scenario: the same tied 3-leaf component, but every sum of two pairwise
// special distances among the three leaves (edges forbidden) exceeds the
// tree cost —
// no alternative survives the forbidding, so the tie could just be an
// artifact of reusing the tree's own edges. The 3-leaf equality sub-check
// retracts the tentative rule-out.
func TestRuleOutPeripheral_ThreeLeafEqualityRetracts(t *testing.T) {
	dist := newStubDist()
	dist.setForbidden("0", "1", 3.0)
	dist.setForbidden("0", "2", 3.0)
	dist.setForbidden("1", "2", 3.0) // every pairwise sum (6.0) exceeds the 4.0 tree cost

	e := buildThreeLeafTie(t, dist)

	ruledOut, err := e.RuleOutPeripheral()
	require.NoError(t, err)
	require.False(t, ruledOut, "no cheap alternative survives forbidding, so the tie must not be trusted")
}

// Scenario: a star center with two cheap leaves and an expensive horizontal
// SD between them — no shortcut is available, so neither candidate is
// ruled out (SPEC §8 scenario 3).
func TestHorizontalAdd_NoShortcutSurvives(t *testing.T) {
	g := smallGraph(t)
	dist := newStubDist()
	dist.set("a", "b", 2.0) // more expensive than either 1.0 extension edge

	e, err := extreduce.NewEngine(g, dist, extreduce.WithInitialShape(exttree.InitialStar))
	require.NoError(t, err)
	require.NoError(t, e.AddRootLevel("c"))
	require.NoError(t, e.LevelInit())

	ruledOutA, err := e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "c", Child: "a", Cost: 1.0})
	require.NoError(t, err)
	require.False(t, ruledOutA)
	ruledOutB, err := e.VerticalAddLeafInitial(extreduce.CandidateEdge{Parent: "c", Child: "b", Cost: 1.0})
	require.NoError(t, err)
	require.False(t, ruledOutB)
	require.NoError(t, e.VerticalClose())

	require.NoError(t, e.HorizontalAdd([]extreduce.CandidateEdge{
		{Parent: "c", Child: "a", Cost: 1.0},
		{Parent: "c", Child: "b", Cost: 1.0},
	}))

	ruledOut, err := e.RuleOutPeripheral()
	require.NoError(t, err)
	require.False(t, ruledOut, "SD(a,b)=2.0 offers no shortcut over either 1.0 extension edge")
}
