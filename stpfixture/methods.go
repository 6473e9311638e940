package stpfixture

import (
	"fmt"

	"github.com/stpkit/extreduce/stpgraph"
)

const (
	minPathVertices     = 2
	minStarVertices     = 2
	minCompleteVertices = 1
	minSparseVertices   = 1
)

const centerVertexIndex = 0

// applyOverlay marks terminals and assigns prizes by topology index, after
// ids has been populated in construction order.
func applyOverlay(g *stpgraph.Graph, ids []string, cfg fixtureConfig) error {
	for idx := range cfg.terminals {
		if idx < 0 || idx >= len(ids) {
			continue
		}
		if err := g.SetTerminal(ids[idx], true); err != nil {
			return fmt.Errorf("stpfixture: SetTerminal(%s): %w", ids[idx], err)
		}
	}
	for idx, p := range cfg.prizes {
		if idx < 0 || idx >= len(ids) {
			continue
		}
		if err := g.SetPrize(ids[idx], p); err != nil {
			return fmt.Errorf("stpfixture: SetPrize(%s): %w", ids[idx], err)
		}
	}

	return nil
}

// Path builds a simple path P_n: n-1 edges (i-1)->i in ascending order.
func Path(n int, opts ...Option) (*stpgraph.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("stpfixture.Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newFixtureConfig(opts...)
	g := stpgraph.NewGraph(stpgraph.WithCapacityHint(n))

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("stpfixture.Path: AddVertex(%s): %w", ids[i], err)
		}
	}
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
			return nil, fmt.Errorf("stpfixture.Path: AddEdge(%s-%s): %w", ids[i-1], ids[i], err)
		}
	}
	if err := applyOverlay(g, ids, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Star builds a star topology with n vertices: a hub at index 0 and n-1
// spokes to the remaining indices.
func Star(n int, opts ...Option) (*stpgraph.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("stpfixture.Star: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newFixtureConfig(opts...)
	g := stpgraph.NewGraph(stpgraph.WithCapacityHint(n))

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("stpfixture.Star: AddVertex(%s): %w", ids[i], err)
		}
	}
	hub := ids[centerVertexIndex]
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(hub, ids[i], w); err != nil {
			return nil, fmt.Errorf("stpfixture.Star: AddEdge(%s-%s): %w", hub, ids[i], err)
		}
	}
	if err := applyOverlay(g, ids, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds the complete simple graph K_n.
func Complete(n int, opts ...Option) (*stpgraph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("stpfixture.Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newFixtureConfig(opts...)
	g := stpgraph.NewGraph(stpgraph.WithCapacityHint(n))

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("stpfixture.Complete: AddVertex(%s): %w", ids[i], err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, fmt.Errorf("stpfixture.Complete: AddEdge(%s-%s): %w", ids[i], ids[j], err)
			}
		}
	}
	if err := applyOverlay(g, ids, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// RandomSparse samples an Erdos-Renyi-like graph over n vertices with
// independent inclusion probability p per unordered pair. A seed must be
// supplied via WithSeed for 0<p<1, matching the teacher's
// ErrNeedRandSource contract.
func RandomSparse(n int, p float64, opts ...Option) (*stpgraph.Graph, error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("stpfixture.RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("stpfixture.RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	cfg := newFixtureConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("stpfixture.RandomSparse: %w", ErrNeedRandSource)
	}
	g := stpgraph.NewGraph(stpgraph.WithCapacityHint(n))

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("stpfixture.RandomSparse: AddVertex(%s): %w", ids[i], err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p >= 1
			if cfg.rng != nil {
				include = cfg.rng.Float64() <= p
			}
			if !include {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, fmt.Errorf("stpfixture.RandomSparse: AddEdge(%s-%s): %w", ids[i], ids[j], err)
			}
		}
	}
	// Ensure connectivity on the spanning path regardless of sampling
	// outcome, since a Steiner-tree fixture with a disconnected graph is
	// not a meaningful test input.
	for i := 1; i < n; i++ {
		if !g.HasEdge(ids[i-1], ids[i]) {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
				return nil, fmt.Errorf("stpfixture.RandomSparse: AddEdge(%s-%s): %w", ids[i-1], ids[i], err)
			}
		}
	}
	if err := applyOverlay(g, ids, cfg); err != nil {
		return nil, err
	}

	return g, nil
}
