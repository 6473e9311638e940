package extreduce

import (
	"github.com/stpkit/extreduce/csrdepot"
	"github.com/stpkit/extreduce/dcmst"
)

// RuleOutPeripheral decides whether the current top-of-stack extension can
// be ruled out (SPEC §4.G, mstCompRuleOut). If HorizontalAdd's sibling test
// (Stage 1) already rejected this level's component, that decision stands (a
// candidate rejected by VerticalAddLeaf is only left unattached and does not
// by itself reject the component); otherwise the component MST of the top level is built
// (if not already) and Stage 2's MST-objective test is applied: the MST
// weight is compared against the tree cost (minus any inner-node prizes in
// the PC variant), tolerating equality once the component has three or more
// nodes (two or more edges), and requiring strict improvement otherwise.
// A rule-out tied on exactly three leaves is then handed to the 3-leaf
// equality sub-check, which can retract it. Calling this twice on the same
// state returns the same boolean without mutating it further (SPEC §8
// idempotence property) once the component MST has been built.
func (e *Engine) RuleOutPeripheral() (bool, error) {
	if e.tree == nil {
		return false, ErrNoRootLevel
	}
	if e.ruledOutStage1 {
		return true, nil
	}

	top, err := e.buildComponentTop()
	if err != nil {
		return false, err
	}

	w := dcmst.GetWeight(top)
	c := e.tree.TreeCost()
	if e.cfg.pc {
		c -= e.innerPrizeSum()
	}
	nEdges := len(top.Head) / 2

	var ruledOut bool
	if nEdges >= 2 {
		ruledOut = !e.isLess(c, w) // w <= c
	} else {
		ruledOut = e.isLess(w, c) // w < c
	}

	if ruledOut && e.tree.NLeaves() == 3 && e.isEqual(w, c) && !e.threeLeafEqualityRulesOut() {
		ruledOut = false
	}

	return ruledOut, nil
}

// buildComponentTop builds and pushes the component MST of the top level
// (SPEC §3: "component_init -> component_build"), or returns the already-
// built top if this level's component has already been built.
func (e *Engine) buildComponentTop() (*csrdepot.CSR, error) {
	if e.compOpen {
		return e.component.GetTop(), nil
	}

	prevTop := e.component.GetTop()
	out, err := e.pushExtendedMST(e.component, prevTop, "")
	if err != nil {
		return nil, err
	}
	e.compOpen = true

	return out, nil
}

// innerPrizeSum returns the sum of prizes of every current non-leaf
// terminal (SPEC §4.G Stage 2: "minus any inner-node prizes in the PC
// variant"), found by walking every leaf's parent chain and summing each
// inner terminal's prize exactly once.
func (e *Engine) innerPrizeSum() float64 {
	seen := make(map[string]bool)
	var sum float64
	for _, leaf := range e.tree.Leaves() {
		cur, ok := e.tree.ParentNode(leaf)
		for ok {
			if !seen[cur] {
				seen[cur] = true
				if e.graph.IsTerm(cur) {
					sum += e.graph.Prize(cur)
				}
			}
			cur, ok = e.tree.ParentNode(cur)
		}
	}

	return sum
}
