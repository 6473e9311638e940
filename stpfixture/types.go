package stpfixture

import (
	"math/rand"
	"strconv"
)

// fixtureConfig aggregates the knobs every constructor in this package
// reads. It is resolved once per call from Option values and passed by
// value, mirroring the teacher builder package's builderConfig contract.
type fixtureConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64

	// terminals, when non-nil, marks exactly the given index set as
	// terminal (WithTerminals); prizes assigns a per-index prize
	// (WithPrizes). Both are consulted after topology construction.
	terminals map[int]bool
	prizes    map[int]float64
}

const defaultConstWeight = 1.0

func defaultFixtureConfig() fixtureConfig {
	return fixtureConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}

// Option customizes a fixture constructor by mutating a fixtureConfig
// before graph construction begins.
type Option func(*fixtureConfig)

// WithIDScheme sets the deterministic vertex-ID generator idx -> string.
// Panics on nil (programmer error, per the teacher's option-panics
// convention for meaningless inputs).
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("stpfixture: WithIDScheme(nil)")
	}

	return func(c *fixtureConfig) { c.idFn = fn }
}

// WithSeed creates a seeded, reproducible RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *fixtureConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("stpfixture: WithWeightFn(nil)")
	}

	return func(c *fixtureConfig) { c.weightFn = fn }
}

// WithTerminals marks the vertices at the given topology indices as Steiner
// terminals (SPEC §6 "Is_term(v)").
func WithTerminals(indices ...int) Option {
	return func(c *fixtureConfig) {
		if c.terminals == nil {
			c.terminals = make(map[int]bool, len(indices))
		}
		for _, i := range indices {
			c.terminals[i] = true
		}
	}
}

// WithPrizes assigns prize-collecting prizes by topology index (SPEC §6
// "prize[v] >= 0"). Indices not present default to prize 0.
func WithPrizes(prizes map[int]float64) Option {
	return func(c *fixtureConfig) {
		if c.prizes == nil {
			c.prizes = make(map[int]float64, len(prizes))
		}
		for i, p := range prizes {
			c.prizes[i] = p
		}
	}
}

func newFixtureConfig(opts ...Option) fixtureConfig {
	cfg := defaultFixtureConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
