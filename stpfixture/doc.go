// Package stpfixture builds small, deterministic stpgraph.Graph instances
// for examples and property tests: paths, stars, complete graphs and sparse
// random graphs, each with an optional terminal/prize overlay for the
// prize-collecting variant. Every constructor is deterministic given the
// same options and call order, mirroring the teacher builder package's
// contract (github.com/katalvlaran/lvlath/builder).
package stpfixture
