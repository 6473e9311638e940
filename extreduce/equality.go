package extreduce

import "github.com/stpkit/extreduce/exttree"

// isLess reports whether a is strictly less than b beyond the configured
// epsilon (SPEC §4.G, §9: comparisons tolerate numeric instability).
func (e *Engine) isLess(a, b float64) bool {
	return a < b-e.cfg.epsilon
}

// isEqual reports whether a and b are equal within the configured epsilon.
func (e *Engine) isEqual(a, b float64) bool {
	return !e.isLess(a, b) && !e.isLess(b, a)
}

// equalityRuleOut implements SPEC §4.E: u's special distance to leaf equals
// the bottleneck along leaf's path up to the marked root path. It asks
// whether that distance is still achievable with leaf's entire root-path
// edges forbidden; if the recomputed distance is no worse, the equality is
// a genuine alternative (not an artifact of reusing the tree's own edges)
// and the rule-out holds. Forbidding the whole path rather than only the
// matching bottleneck sub-path is a deliberate over-approximation: it can
// only make the recomputed distance worse, which biases toward "does not
// rule out" — the conservative direction SPEC §7 requires.
func (e *Engine) equalityRuleOut(u, leaf string, sdEq float64) bool {
	forbidden := make(map[string]bool)
	var ids []string

	cur := leaf
	for {
		parent, ok := e.tree.ParentNode(cur)
		if !ok {
			break
		}
		if id, found := edgeIDBetween(e.graph, cur, parent); found && !forbidden[id] {
			forbidden[id] = true
			ids = append(ids, id)
		}
		cur = parent
	}

	recomputed := e.dist.SdDoubleForbidden(sdEq, forbidden, u, leaf)
	holds := recomputed >= -0.5 && !e.isLess(sdEq, recomputed)
	if holds {
		e.recordForbidden(ids)
	}

	return holds
}

// recordForbidden marks every id in ids as equality-forbidden for the
// duration of the current branch, recording each on the undo stack exactly
// once.
func (e *Engine) recordForbidden(ids []string) {
	for _, id := range ids {
		if e.eqForbidden[id] {
			continue
		}
		e.eqForbidden[id] = true
		e.eqResetStack = append(e.eqResetStack, id)
	}
}

// EqHasForbiddenEdges reports whether any equality-forbidden edge is
// currently recorded (SPEC §8 scenario 5: sdeq_has_forbidden_edges).
func (e *Engine) EqHasForbiddenEdges() bool {
	return len(e.eqForbidden) > 0
}

// threeLeafEqualityRulesOut implements the 3-leaf equality sub-check (SPEC
// §4.G Stage 2, mstEqComp3RuleOut): called only once RuleOutPeripheral has
// already found the MST-vs-tree-cost comparison tied over exactly three
// leaves, it decides whether that tentative rule-out should stand. It is
// never confirmed for an initial star shape — simple-path equality
// rule-outs are not valid there — and is trivially confirmed when no
// equality-forbidden edges are currently recorded. Otherwise it recomputes, with every equality-forbidden
// edge excluded, the special distance between pairs among the three current
// leaves, and confirms the rule-out as soon as any pairwise sum of two such
// distances is no greater than the tree cost — i.e. an alternate two-edge
// spanning tree over the three leaves matches or undercuts it. If neither
// pairwise sum qualifies, or a needed special distance is unknown, the
// rule-out is not confirmed (SPEC §7: ambiguous SD never rules out).
func (e *Engine) threeLeafEqualityRulesOut() bool {
	if e.tree.Shape() == exttree.InitialStar {
		return false
	}
	if !e.EqHasForbiddenEdges() {
		return true
	}

	leaves := e.tree.Leaves()
	if len(leaves) != 3 {
		return false
	}

	c := e.tree.TreeCost()
	sd := func(i, j int) (float64, bool) {
		v := e.dist.SdDoubleForbidden(-1, e.eqForbidden, leaves[i], leaves[j])

		return v, v >= -0.5
	}
	leSum := func(a, b float64) bool { return !e.isLess(c, a+b) }

	sd01, ok01 := sd(0, 1)
	sd02, ok02 := sd(0, 2)
	if !ok01 || !ok02 {
		return false
	}
	if leSum(sd01, sd02) {
		return true
	}

	sd12, ok12 := sd(1, 2)
	if !ok12 {
		return false
	}

	return leSum(sd01, sd12) || leSum(sd02, sd12)
}
