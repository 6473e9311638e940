package extreduce

import (
	"github.com/stpkit/extreduce/csrdepot"
	"github.com/stpkit/extreduce/mldist"
)

// pushExtendedMST chains the current level's candidates onto prevTop (a
// previous levelbase or component MST with prevCount nodes) via the DCMST
// kernel's edge-swap insertion, and pushes a copy of the result as the new
// top of depot. excludeVertex, when non-empty, forces every new candidate's
// adjacency entry toward that vertex to FarAway (used for levelbase, which
// excludes the vertex just extended from; SPEC §4.F step 5).
func (e *Engine) pushExtendedMST(depot *csrdepot.Depot, prevTop *csrdepot.CSR, excludeVertex string) (*csrdepot.CSR, error) {
	if len(e.levelCandidates) == 0 {
		return e.pushCopy(depot, prevTop), nil
	}

	prevCount := prevTop.NNodes
	added := make([]CandidateEdge, 0, len(e.levelCandidates))
	var out *csrdepot.CSR

	for idx, cand := range e.levelCandidates {
		a := e.buildAdjacencyRow(cand, added, prevCount, excludeVertex)
		if idx == 0 {
			o, err := e.kernel.AddNode(prevTop, a)
			if err != nil {
				return nil, err
			}
			out = o
		} else {
			if err := e.kernel.AddNodeInplace(a); err != nil {
				return nil, err
			}
			out = e.kernel.Out()
		}
		added = append(added, cand)
	}

	return e.pushCopy(depot, out), nil
}

// pushCopy pushes a value copy of src onto depot, so the depot's CSR shares
// no arrays with the kernel's output.
func (e *Engine) pushCopy(depot *csrdepot.Depot, src *csrdepot.CSR) *csrdepot.CSR {
	depot.AddEmptyTopTree(src.NNodes)
	dst := depot.GetEmptyTop()
	dst.Start = append([]int(nil), src.Start...)
	dst.Head = append([]int(nil), src.Head...)
	dst.Cost = append([]float64(nil), src.Cost...)
	depot.EmptyTopSetMarked()

	return depot.GetTop()
}

// buildAdjacencyRow builds the DCMST adjacency-cost row for cand against
// the prevCount pre-existing nodes (by leafOrder position) plus the
// already-added siblings of this level (by stored horizontal SD).
func (e *Engine) buildAdjacencyRow(cand CandidateEdge, added []CandidateEdge, prevCount int, excludeVertex string) []float64 {
	total := prevCount + len(added)
	a := make([]float64, total+1)

	for i := 0; i < prevCount; i++ {
		leaf := e.leafOrder[i]
		switch {
		case excludeVertex != "" && leaf == excludeVertex:
			a[i] = mldist.FarAway
		case leaf == cand.Parent:
			a[i] = cand.Cost
		default:
			sd := e.dist.SdDouble(cand.Child, leaf)
			if e.pc != nil {
				sd = e.pc.AdjustSd(sd, leaf)
			}
			if sd < -0.5 {
				sd = mldist.FarAway
			}
			a[i] = sd
		}
	}

	for k, sib := range added {
		sd := e.horizontal.TopTargetDist(cand.Child, sib.Child)
		if sd < -0.5 {
			sd = mldist.FarAway
		}
		a[prevCount+k] = sd
	}

	return a
}
