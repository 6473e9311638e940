package dcmst

import "github.com/stpkit/extreduce/csrdepot"

// Get1Node returns a trivial one-node, zero-edge MST.
func (k *Kernel) Get1Node() *csrdepot.CSR {
	return &csrdepot.CSR{NNodes: 1, Start: []int{0, 0}}
}

// GetWeight returns the total edge weight of an MST in CSR form. Each edge
// appears twice in the CSR (once from each endpoint), so the raw cost sum
// is halved.
func GetWeight(p *csrdepot.CSR) float64 {
	var sum float64
	for _, c := range p.Cost {
		sum += c
	}

	return sum / 2
}

// AddNode builds a new MST on k+1 nodes from a copy of p (k nodes) and the
// adjacency-cost vector a from the new node to every node of p. len(a) must
// equal k+1 (the last entry is reserved, matching the kernel's buffer
// convention, and is not read). The returned CSR is freshly allocated and
// becomes the kernel's current output (see Out); later AddNode or
// AddNodeInplace calls replace that output without modifying this CSR.
func (k *Kernel) AddNode(p *csrdepot.CSR, a []float64) (*csrdepot.CSR, error) {
	out, err := k.addNode(p, a)
	if err != nil {
		return nil, err
	}
	k.out = out

	return out, nil
}

// AddNodeInplace extends the kernel's current output (established by the
// most recent AddNode call) by one more node, in place. Must not be called
// while a GetExtWeight call on the same kernel is logically concurrent
// (SPEC §9: the arena is not re-entrant); this kernel enforces that with a
// simple busy flag since the engine itself is single-threaded cooperative.
func (k *Kernel) AddNodeInplace(a []float64) error {
	if k.out == nil {
		return ErrNoPriorOutput
	}
	k.busy = true
	defer func() { k.busy = false }()

	out, err := k.addNode(k.out, a)
	if err != nil {
		return err
	}
	k.out = out

	return nil
}

// Out returns the kernel's current in-place output (the MST most recently
// produced by AddNode or extended by AddNodeInplace), or nil if AddNode has
// never been called. A later AddNode or AddNodeInplace call replaces it with
// a new CSR rather than modifying the one returned here.
func (k *Kernel) Out() *csrdepot.CSR {
	return k.out
}

// GetExtWeight computes the weight of p extended by a new node with
// adjacency costs a, without materializing the extended MST. It is the
// trial-extension primitive the rule-out engine uses to test a candidate
// component cheaply (SPEC §4.F step 2).
func (k *Kernel) GetExtWeight(p *csrdepot.CSR, a []float64) (float64, error) {
	if k.busy {
		return 0, ErrReentrant
	}
	nnodesOut := p.NNodes + 1
	if nnodesOut > k.maxNodes+1 {
		return 0, ErrBufferTooSmall
	}
	if len(a) != nnodesOut {
		return 0, ErrInvalidInput
	}

	nedges, err := k.insert(p, a)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < nedges; i++ {
		sum += k.edgestore[i].cost
	}

	return sum, nil
}

// addNode runs the edge-swap insertion and materializes the result into a
// fresh CSR of p.NNodes+1 nodes.
func (k *Kernel) addNode(p *csrdepot.CSR, a []float64) (*csrdepot.CSR, error) {
	nnodesOut := p.NNodes + 1
	if nnodesOut > k.maxNodes+1 {
		return nil, ErrBufferTooSmall
	}
	if len(a) != nnodesOut {
		return nil, ErrInvalidInput
	}

	nedges, err := k.insert(p, a)
	if err != nil {
		return nil, err
	}

	out := &csrdepot.CSR{
		NNodes: nnodesOut,
		Start:  make([]int, nnodesOut+1),
		Head:   make([]int, 2*nedges),
		Cost:   make([]float64, 2*nedges),
	}
	csrFromEdgestore(k.edgestore[:nedges], out)

	return out, nil
}

// insert runs dcmstInsert rooted at node 0 and returns the number of edges
// written to k.edgestore (== p.NNodes).
func (k *Kernel) insert(p *csrdepot.CSR, a []float64) (int, error) {
	if p.NNodes < 1 {
		return 0, ErrInvalidInput
	}

	k.nodemark[0] = true
	for i := 1; i < p.NNodes; i++ {
		k.nodemark[i] = false
	}

	maxPathEdge := cEdge{tail: -1, head: -1, cost: -1}
	nedges := 0
	dcmstInsert(p, a, 0, k.edgestore, k.nodemark, &maxPathEdge, &nedges)
	k.edgestore[nedges] = maxPathEdge
	nedges++

	return nedges, nil
}

// dcmstInsert recursively visits org's tree rooted at root, deciding at
// each existing tree edge whether to keep it or swap it for the cheaper
// connection exposed by the new node's adjacency cost. It returns, via
// maxPathEdge, the single weakest edge discovered on the path from root
// down to the subtree just processed — either an original tree edge or a
// (root, newNode) candidate — for the caller to compare one level up.
func dcmstInsert(org *csrdepot.CSR, adjcosts []float64, root int, newMST []cEdge, marked []bool, maxPathEdge *cEdge, nedges *int) {
	root2new := cEdge{tail: root, head: org.NNodes, cost: adjcosts[root]}

	for i := org.Start[root]; i != org.Start[root+1]; i++ {
		w := org.Head[i]
		if marked[w] {
			continue
		}
		costRootToW := org.Cost[i]
		marked[w] = true
		dcmstInsert(org, adjcosts, w, newMST, marked, maxPathEdge, nedges)

		if maxPathEdge.cost < costRootToW {
			newMST[*nedges] = *maxPathEdge
			*nedges++
			if costRootToW < root2new.cost {
				root2new = cEdge{tail: root, head: w, cost: costRootToW}
			}
		} else {
			newMST[*nedges] = cEdge{tail: root, head: w, cost: costRootToW}
			*nedges++
			if maxPathEdge.cost < root2new.cost {
				root2new = *maxPathEdge
			}
		}
	}

	*maxPathEdge = root2new
}

// csrFromEdgestore builds a CSR from a flat list of k-1 undirected tree
// edges over k nodes via a counting-sort pass, the same two-pass technique
// the source uses to go from an edge list to a CSR row layout.
func csrFromEdgestore(edgestore []cEdge, out *csrdepot.CSR) {
	n := out.NNodes
	start := out.Start
	for i := range start {
		start[i] = 0
	}

	for _, e := range edgestore {
		start[e.tail]++
		start[e.head]++
	}
	for i := 1; i <= n; i++ {
		start[i] += start[i-1]
	}

	for _, e := range edgestore {
		v1, v2 := e.tail, e.head
		start[v1]--
		out.Head[start[v1]] = v2
		out.Cost[start[v1]] = e.cost

		start[v2]--
		out.Head[start[v2]] = v1
		out.Cost[start[v2]] = e.cost
	}
}
