package extreduce

import (
	"github.com/stpkit/extreduce/bottleneck"
	"github.com/stpkit/extreduce/csrdepot"
	"github.com/stpkit/extreduce/dcmst"
	"github.com/stpkit/extreduce/exttree"
	"github.com/stpkit/extreduce/mldist"
	"github.com/stpkit/extreduce/pcmark"
	"github.com/stpkit/extreduce/stpgraph"
)

// epsDefault is the default near-equality tolerance used throughout rule-out
// comparisons (SPEC §4.G, §9).
const epsDefault = 1e-9

// maxDegDefault bounds a vertical level's slot count per leaf when the
// caller does not size it explicitly via WithMaxDeg.
const maxDegDefault = 4

// DistOracle is the external distance-data collaborator (SPEC §6):
// sd_double and sd_double_forbidden, with -1 encoding "unknown" and
// FarAway encoding "infeasibly large". *distdata.Store satisfies this.
type DistOracle interface {
	SdDouble(u, v string) float64
	SdDoubleForbidden(distEq float64, forbidden map[string]bool, u, v string) float64
}

// CandidateEdge is a tree extension edge offered to VerticalAddLeaf /
// VerticalAddLeafInitial / HorizontalAdd: Parent must already be in the
// tree (root, leaf or inner node), Child is the vertex under consideration as its new leaf child.
type CandidateEdge struct {
	Parent string
	Child  string
	Cost   float64
}

// EngineOption configures an Engine before first use.
type EngineOption func(*engineConfig)

type engineConfig struct {
	epsilon      float64
	maxDeg       int
	maxLeaves    int
	verbose      bool
	pc           bool
	initialShape exttree.InitialShape
}

func defaultConfig() engineConfig {
	return engineConfig{
		epsilon:      epsDefault,
		maxDeg:       maxDegDefault,
		maxLeaves:    64,
		initialShape: exttree.InitialEdge,
	}
}

// WithEpsilon overrides the near-equality tolerance used by rule-out
// comparisons (SPEC §4.G: "numeric instability never fabricates a
// rule-out").
func WithEpsilon(eps float64) EngineOption {
	return func(c *engineConfig) { c.epsilon = eps }
}

// WithMaxDeg bounds the per-leaf slot count a vertical level is sized for
// (SPEC §4.F step 1: "MAX_DEG x (n_leaves or n_leaves-1)").
func WithMaxDeg(maxDeg int) EngineOption {
	return func(c *engineConfig) { c.maxDeg = maxDeg }
}

// WithMaxLeaves sizes the DCMST kernel's reusable scratch arena (SPEC §9:
// "at least max_n_leaves+1 wide").
func WithMaxLeaves(n int) EngineOption {
	return func(c *engineConfig) { c.maxLeaves = n }
}

// WithVerbose enables one printed line per rule-out decision and per level
// push/pop.
func WithVerbose() EngineOption {
	return func(c *engineConfig) { c.verbose = true }
}

// WithPrizeCollecting enables the PC mark cache and PC-variant bottleneck
// accumulation (prize subtraction at non-leaf terminals).
func WithPrizeCollecting() EngineOption {
	return func(c *engineConfig) { c.pc = true }
}

// WithInitialShape declares the extension tree's initial-component shape.
// The source infers this from how the very first level's candidates are
// laid out (it is undocumented whether this generalizes beyond the
// originally-observed cases — an open question this package resolves by
// taking the shape as caller-supplied ground truth instead of inferring
// it); defaults to exttree.InitialEdge.
func WithInitialShape(shape exttree.InitialShape) EngineOption {
	return func(c *engineConfig) { c.initialShape = shape }
}

// Engine is the orchestrating level lifecycle and rule-out engine (SPEC §6
// public API). The zero value is not usable; use NewEngine.
type Engine struct {
	cfg engineConfig

	graph *stpgraph.Graph
	dist  DistOracle

	tree       *exttree.Tree
	vertical   *mldist.Store
	horizontal *mldist.Store
	levelbase  *csrdepot.Depot
	component  *csrdepot.Depot
	kernel     *dcmst.Kernel
	bneck      *bottleneck.Tracker
	pc         *pcmark.Cache

	// equality-forbidden edge bookkeeping (SPEC §4.E, §9): a bit-set plus a
	// resettable undo stack of inserted edge ids.
	eqForbidden   map[string]bool
	eqResetStack  []string
	eqCheckpoints []int

	// leafOrder is the append-only CSR-position numbering for tree leaves:
	// position i is assigned the first time a leaf is accepted, and never
	// reassigned afterward, independent of exttree's own leaf-array churn
	// (which reorders on leaf<->inner promotion/demotion for unrelated
	// bookkeeping reasons). CSR/DCMST node identity relies on this
	// numbering staying stable across a leaf's lifetime.
	leafOrder []string

	// candidates accumulated during the currently open level, for
	// HorizontalAdd / LevelClose / rule-out bookkeeping.
	levelCandidates []CandidateEdge
	levelOpen       bool
	compOpen        bool
	ruledOutStage1  bool
}

// NewEngine binds a new Engine to graph and dist. AddRootLevel must be
// called before any other operation.
func NewEngine(graph *stpgraph.Graph, dist DistOracle, opts ...EngineOption) (*Engine, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if dist == nil {
		return nil, ErrNilDist
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		cfg:         cfg,
		graph:       graph,
		dist:        dist,
		vertical:    mldist.NewStore(),
		horizontal:  mldist.NewStore(),
		levelbase:   csrdepot.NewDepot(),
		component:   csrdepot.NewDepot(),
		kernel:      dcmst.NewKernel(cfg.maxLeaves),
		eqForbidden: make(map[string]bool),
	}, nil
}

// Tree exposes the engine's extension-tree state (e.g. for snapshotting in
// push/pop symmetry tests), or nil before AddRootLevel.
func (e *Engine) Tree() *exttree.Tree {
	return e.tree
}
