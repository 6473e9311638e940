package distdata

import (
	"container/heap"

	"github.com/stpkit/extreduce/stpgraph"
)

// pairKey identifies an unordered vertex pair for memoization.
type pairKey struct {
	u, v string
}

func makePairKey(u, v string) pairKey {
	if u <= v {
		return pairKey{u, v}
	}

	return pairKey{v, u}
}

// Store is the concrete distance-data oracle: it computes special distances
// over a stpgraph.Graph via repeated shortest-path search and caches them.
//
// Store is not safe for concurrent use (the engine itself is single-threaded
// cooperative, SPEC §5); the cache is a plain map with no locking.
type Store struct {
	g     *stpgraph.Graph
	cache map[pairKey]float64
}

// NewStore builds a distance-data oracle over g. g is not copied; mutating
// it after construction invalidates the cache silently, which is acceptable
// because the engine treats the underlying graph as immutable for the
// duration of a presolving run.
func NewStore(g *stpgraph.Graph, opts ...Option) (*Store, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{g: g, cache: make(map[pairKey]float64, o.CacheCapacityHint)}, nil
}

// SdDouble returns the special distance between u and v: a non-negative
// real if a path exists, FarAway if no admissible path exists, or Unknown
// if either vertex is absent from the graph.
func (s *Store) SdDouble(u, v string) float64 {
	if u == v {
		return 0
	}
	key := makePairKey(u, v)
	if d, ok := s.cache[key]; ok {
		return d
	}
	d := s.shortestPath(u, v, nil)
	s.cache[key] = d

	return d
}

// SdDoubleForbidden recomputes the special distance between u and v with
// every edge in forbidden excluded from the graph, for the duration of this
// call only. It is used by the engine's equality rule-out (SPEC §4.E) to
// test whether a dominating special distance remains achievable once the
// matching bottleneck path's edges are temporarily unusable.
//
// distEq is accepted for signature parity with the oracle contract (SPEC
// §6); this implementation does not need it since it recomputes the exact
// distance rather than testing a threshold, but callers comparing against
// distEq should use the returned value directly.
func (s *Store) SdDoubleForbidden(distEq float64, forbidden map[string]bool, u, v string) float64 {
	_ = distEq
	if u == v {
		return 0
	}

	return s.shortestPath(u, v, forbidden)
}

// shortestPath runs Dijkstra from u, stopping as soon as v is settled, with
// edges in forbidden excluded from relaxation. Returns Unknown if u or v is
// not in the graph, FarAway if v is unreachable.
func (s *Store) shortestPath(u, v string, forbidden map[string]bool) float64 {
	if !s.g.HasVertex(u) || !s.g.HasVertex(v) {
		return Unknown
	}

	dist := map[string]float64{u: 0}
	visited := map[string]bool{}
	pq := make(nodePQ, 0, 1)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: u, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*nodeItem)
		cur := it.id
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == v {
			return dist[cur]
		}
		for _, e := range s.g.Neighbors(cur) {
			if forbidden != nil && forbidden[e.ID] {
				continue
			}
			nb := e.To
			if nb == cur {
				nb = e.From
			}
			if visited[nb] {
				continue
			}
			nd := dist[cur] + e.Weight
			if old, ok := dist[nb]; !ok || nd < old {
				dist[nb] = nd
				heap.Push(&pq, &nodeItem{id: nb, dist: nd})
			}
		}
	}

	if d, ok := dist[v]; ok {
		return d
	}

	return FarAway
}

// nodeItem is an entry in the shortest-path priority queue.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ implements heap.Interface ordering by smallest dist first.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
