package extreduce

import (
	"fmt"

	"github.com/stpkit/extreduce/exttree"
)

// AddRootLevel initializes every stack with a one-node MST rooted at
// rootVertex (SPEC §6, §3 lifecycle: "the root level is created exactly
// once at engine start").
func (e *Engine) AddRootLevel(rootVertex string) error {
	if e.tree != nil {
		return ErrRootLevelSet
	}

	e.tree = exttree.NewTree(rootVertex, e.cfg.initialShape)
	e.bneck = bottleneckTrackerFor(e.tree, e.graph, e.cfg.pc)
	if e.cfg.pc {
		e.pc = newPcCache(e.graph, e.tree)
	}

	e.vertical.LevelAddTop(1, 1)
	e.vertical.LevelCloseTop()
	e.horizontal.LevelAddTop(1, 1)
	e.horizontal.LevelCloseTop()

	e.levelbase.AddEmptyTopTree(1)
	e.levelbase.EmptyTopSetMarked()
	e.component.AddEmptyTopTree(1)
	e.component.EmptyTopSetMarked()

	// The root occupies CSR position 0 in both one-node trees just pushed;
	// leafOrder must account for it so later positions line up with
	// subsequently-attached leaves (see the leafOrder field doc).
	e.leafOrder = append(e.leafOrder, rootVertex)

	return nil
}

// LevelInit pushes an empty vertical level sized MaxDeg x (n_leaves or
// n_leaves-1) and starts accumulating this level's candidates (SPEC §4.F
// step 1).
func (e *Engine) LevelInit() error {
	if e.tree == nil {
		return ErrNoRootLevel
	}
	if e.levelOpen {
		return ErrLevelOpen
	}

	nLeaves := e.tree.NLeaves()
	nTargets := nLeaves
	if e.tree.Root() != "" && e.tree.TreeDeg(e.tree.Root()) > 0 {
		nTargets = nLeaves - 1
	}
	if nTargets < 1 {
		nTargets = 1
	}

	e.vertical.LevelAddTop(e.cfg.maxDeg*nLeaves, nTargets)
	e.levelOpen = true
	e.levelCandidates = e.levelCandidates[:0]
	e.ruledOutStage1 = false
	e.compOpen = false
	e.eqCheckpoints = append(e.eqCheckpoints, len(e.eqResetStack))

	e.logf("level_init: nLeaves=%d nTargets=%d", nLeaves, nTargets)

	return nil
}

// VerticalAddLeaf fills the vertical SD row from edge.Child to every
// current tree leaf (splicing out edge.Parent's own entry, SUPPLEMENTED
// FEATURES), and tests the cheapest bottleneck domination per pair (SPEC
// §4.G Stage 1, folded into this call per §4.F step 2). If the candidate
// survives that, it is further tested by extending the previous level's
// component MST with a trial insertion (mstLevelLeafTryExtMst), then, in
// the prize-collecting variant, against every non-leaf vertex the PC mark
// cache reached (bottleneckCheckNonLeaves_pc), and finally against every
// current inner node of the tree (bottleneckCheckNonLeaves). None of these
// three extra checks run for the initial component, matching the source's
// separate, simpler initial-component entry point. It reports whether the
// candidate is ruled out on the spot.
func (e *Engine) VerticalAddLeaf(edge CandidateEdge) (bool, error) {
	return e.verticalAddLeaf(edge, false)
}

// VerticalAddLeafInitial is VerticalAddLeaf for the initial component
// (SPEC §6): it skips the marked-root-path bottleneck test against
// ancestors, since there is no tree above the initial component yet.
func (e *Engine) VerticalAddLeafInitial(edge CandidateEdge) (bool, error) {
	return e.verticalAddLeaf(edge, true)
}

func (e *Engine) verticalAddLeaf(edge CandidateEdge, initial bool) (bool, error) {
	if !e.levelOpen {
		return false, ErrNoLevel
	}
	if !e.tree.IsInTree(edge.Parent) {
		return false, ErrUnknownLeaf
	}

	e.bneck.MarkRootPath(edge.Parent)
	if e.pc != nil {
		e.pc.MarkFromVertex(edge.Child)
	}
	defer func() {
		if e.pc != nil {
			e.pc.Unmark(edge.Child)
		}
		e.bneck.UnmarkRootPath(edge.Parent)
	}()

	e.vertical.EmptySlotSetBase(edge.Child)
	ids := e.vertical.EmptySlotTargetIDs()
	dists := e.vertical.EmptySlotTargetDists()

	ruledOut := false
	for _, leaf := range e.tree.Leaves() {
		if leaf == edge.Parent {
			continue // vertical-SD-minus-self-entry splice
		}

		sd := e.dist.SdDouble(edge.Child, leaf)
		if e.pc != nil {
			sd = e.pc.AdjustSd(sd, leaf)
		}
		*ids = append(*ids, leaf)
		*dists = append(*dists, sd)

		if ruledOut || initial {
			continue
		}
		if e.ancestorDominates(edge.Child, leaf, sd) {
			ruledOut = true
		}
	}

	if !ruledOut && !initial {
		ext, err := e.tryExtMstRulesOut(edge)
		if err != nil {
			e.vertical.EmptySlotReset()

			return false, err
		}
		ruledOut = ext
	}

	if !ruledOut && !initial && e.pc != nil {
		ruledOut = e.bottleneckCheckNonLeavesPc(edge)
	}

	if !ruledOut && !initial {
		ruledOut = e.bottleneckCheckNonLeaves(edge)
	}

	if ruledOut {
		e.vertical.EmptySlotReset()
	} else {
		e.vertical.EmptySlotSetFilled()
		if err := e.tree.AttachLeaf(edge.Parent, edge.Child, edge.Cost); err != nil {
			return false, err
		}
		e.leafOrder = append(e.leafOrder, edge.Child)
		e.levelCandidates = append(e.levelCandidates, edge)
	}

	e.logf("vertical_add_leaf(%s->%s): ruled_out=%v", edge.Parent, edge.Child, ruledOut)

	return ruledOut, nil
}

// ancestorDominates implements the ancestor half of Stage 1 (SPEC §4.G):
// rule out if sd < bottleneck_to(leaf) along the currently-marked root
// path; equality triggers the equality rule-out (§4.E).
func (e *Engine) ancestorDominates(u, leaf string, sd float64) bool {
	if sd < -0.5 {
		return false // unknown SD never rules out (SPEC §7)
	}
	bd := e.bneck.GetBottleneckDist(leaf)
	if e.isLess(sd, bd) {
		return true
	}
	if e.isEqual(sd, bd) {
		return e.equalityRuleOut(u, leaf, sd)
	}

	return false
}

// tryExtMstRulesOut implements mstLevelLeafTryExtMst (SPEC §4.F step 2): it
// extends the previous level's component MST by edge.Child, using the
// vertical SD row just computed as the trial node's adjacency costs, and
// rules the candidate out if the extended MST's weight already undercuts
// the current tree cost (minus any inner-node prizes in the PC variant)
// without needing to wait for the full Stage 2 test in RuleOutPeripheral.
func (e *Engine) tryExtMstRulesOut(edge CandidateEdge) (bool, error) {
	top := e.component.GetTop()
	a := e.buildAdjacencyRow(edge, nil, top.NNodes, "")

	extWeight, err := e.kernel.GetExtWeight(top, a)
	if err != nil {
		return false, err
	}

	treeCost := e.tree.TreeCost()
	if e.cfg.pc {
		treeCost -= e.innerPrizeSum()
	}

	return e.isLess(extWeight, treeCost), nil
}

// bottleneckWithExtedgeIsDominated implements the shared test
// bottleneckCheckNonLeaves and bottleneckCheckNonLeaves_pc both apply
// against a non-leaf vertex: the candidate is dominated either by its own
// edge cost or, failing that, by the marked root path's bottleneck distance
// to vertex; either case falls through to the equality rule-out on a tie.
func (e *Engine) bottleneckWithExtedgeIsDominated(edge CandidateEdge, vertex string, sd float64) bool {
	if sd < -0.5 {
		return false
	}
	if e.isLess(sd, edge.Cost) {
		return true
	}
	if e.isEqual(sd, edge.Cost) && e.equalityRuleOut(edge.Child, vertex, sd) {
		return true
	}
	if vertex == edge.Parent {
		return false
	}

	bd := e.bneck.GetBottleneckDist(vertex)
	if e.isLess(sd, bd) {
		return true
	}
	if e.isEqual(sd, bd) {
		return e.equalityRuleOut(edge.Child, vertex, sd)
	}

	return false
}

// bottleneckCheckNonLeavesPc implements bottleneckCheckNonLeaves_pc (SPEC
// §4.F step 2, PC variant): tests bottleneck domination of edge against
// every non-leaf vertex the PC mark cache reached from edge.Child.
func (e *Engine) bottleneckCheckNonLeavesPc(edge CandidateEdge) bool {
	for _, v := range e.pc.MarkedVertices() {
		if e.tree.TreeDeg(v) <= 1 {
			continue // leaf, or not contained
		}
		sd := e.dist.SdDouble(edge.Child, v)
		if e.bottleneckWithExtedgeIsDominated(edge, v, sd) {
			return true
		}
	}

	return false
}

// bottleneckCheckNonLeaves implements bottleneckCheckNonLeaves (SPEC §4.F
// step 2): tests bottleneck domination of edge against every current inner
// node of the tree.
func (e *Engine) bottleneckCheckNonLeaves(edge CandidateEdge) bool {
	for _, node := range e.tree.InnerNodes() {
		if node == edge.Parent {
			continue
		}
		sd := e.dist.SdDouble(edge.Child, node)
		if e.pc != nil {
			sd = e.pc.AdjustSd(sd, node)
		}
		if e.bottleneckWithExtedgeIsDominated(edge, node, sd) {
			return true
		}
	}

	return false
}

// VerticalClose seals the vertical level for further additions (SPEC
// §4.F step 3).
func (e *Engine) VerticalClose() error {
	if !e.levelOpen {
		return ErrNoLevel
	}
	e.vertical.LevelCloseTop()

	return nil
}

// HorizontalAdd computes pairwise SDs among extEdges' children, reusing the
// already-stored value for left siblings and recomputing fresh for right
// siblings (SUPPLEMENTED FEATURES sibling-reuse asymmetry), testing sibling
// bottleneck domination during the right-sibling recomputation (SPEC §4.F
// step 4, §4.G Stage 1 sibling half).
func (e *Engine) HorizontalAdd(extEdges []CandidateEdge) error {
	if !e.levelOpen {
		return ErrNoLevel
	}

	n := len(extEdges)
	e.horizontal.LevelAddTop(n, n)
	for i, right := range extEdges {
		e.horizontal.EmptySlotSetBase(right.Child)
		ids := e.horizontal.EmptySlotTargetIDs()
		dists := e.horizontal.EmptySlotTargetDists()

		for j, left := range extEdges {
			if i == j {
				continue
			}
			var sd float64
			if j < i {
				// left sibling: read back the value right already stored
				// when left itself was processed as the "right" side.
				sd = e.horizontal.TopTargetDist(left.Child, right.Child)
			} else {
				sd = e.dist.SdDouble(right.Child, left.Child)
				if e.pc != nil {
					sd = e.pc.AdjustSd(sd, left.Child)
				}
				e.siblingDominates(right, left, sd)
			}
			*ids = append(*ids, left.Child)
			*dists = append(*dists, sd)
		}
		e.horizontal.EmptySlotSetFilled()
	}
	e.horizontal.LevelCloseTop()

	return nil
}

// siblingDominates implements the sibling half of Stage 1 (SPEC §4.G):
// rule out a pair if sd undercuts either sibling's own extension edge
// cost; equality triggers the equality rule-out.
func (e *Engine) siblingDominates(right, left CandidateEdge, sd float64) {
	if sd < -0.5 {
		return
	}
	if e.isLess(sd, right.Cost) || e.isLess(sd, left.Cost) {
		e.ruledOutStage1 = true

		return
	}
	if e.isEqual(sd, right.Cost) || e.isEqual(sd, left.Cost) {
		if e.equalityRuleOut(right.Child, left.Child, sd) {
			e.ruledOutStage1 = true
		}
	}
}

// LevelClose builds the new levelbase MST: a one-node MST if extNode is the
// tree root, otherwise the previous levelbase MST extended by every sibling
// of extNode in leaf order (SPEC §4.F step 5).
func (e *Engine) LevelClose(extNode string) error {
	if !e.levelOpen {
		return ErrNoLevel
	}

	if extNode == e.tree.Root() {
		e.levelbase.AddEmptyTopTree(1)
		e.levelbase.EmptyTopSetMarked()
	} else if _, err := e.pushExtendedMST(e.levelbase, e.levelbase.GetTop(), extNode); err != nil {
		return err
	}
	e.levelOpen = false

	e.logf("level_close(%s)", extNode)

	return nil
}

// LevelRemove pops horizontal, levelbase, then vertical, in that order
// (SPEC §4.F retraction), detaches any leaves this level attached, and
// rewinds the equality-forbidden edge stack to this level's checkpoint
// (SPEC §4.E: "on backtrack, the stack is rewound and flags cleared").
func (e *Engine) LevelRemove() error {
	if e.tree == nil {
		return ErrNoRootLevel
	}

	// Every filled slot of the vertical level being popped belongs to a leaf
	// this level attached; those leaves are the last n entries of leafOrder.
	n := e.vertical.LevelNSlots(e.vertical.NLevels())
	e.horizontal.LevelRemoveTop()
	e.levelbase.RemoveTop()
	e.vertical.LevelRemoveTop()

	for i := len(e.leafOrder) - 1; i >= len(e.leafOrder)-n; i-- {
		_ = e.tree.DetachLeaf(e.leafOrder[i])
	}
	e.leafOrder = e.leafOrder[:len(e.leafOrder)-n]
	e.levelCandidates = e.levelCandidates[:0]
	e.levelOpen = false

	if n := len(e.eqCheckpoints); n > 0 {
		cp := e.eqCheckpoints[n-1]
		e.eqCheckpoints = e.eqCheckpoints[:n-1]
		for i := len(e.eqResetStack) - 1; i >= cp; i-- {
			delete(e.eqForbidden, e.eqResetStack[i])
		}
		e.eqResetStack = e.eqResetStack[:cp]
	}

	e.logf("level_remove")

	return nil
}

// ComponentRemove pops the component MST of the current depth (SPEC §3
// lifecycle, §4.G "component_remove").
func (e *Engine) ComponentRemove() error {
	if e.component.IsEmpty() {
		return ErrNoComponent
	}
	e.component.RemoveTop()
	e.compOpen = false

	return nil
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.cfg.verbose {
		fmt.Printf(format+"\n", args...)
	}
}
