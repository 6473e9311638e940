// Package extreduce is the root of the extended-reduction MST engine for
// Steiner Tree Problems in graphs: during presolving, it decides whether
// subtrees rooted at a candidate edge can be safely eliminated from
// consideration by computing tight lower bounds on any Steiner tree that
// would have to include the current expansion, via special distances and
// bottleneck distances.
//
// The engine itself lives in the extreduce/ subpackage (F: level lifecycle,
// G: rule-out engine). Its supporting components are:
//
//	mldist/    — A: layered special-distance store (vertical/horizontal)
//	csrdepot/  — B: stacked CSR depot for MSTs
//	dcmst/     — C: dynamic-cardinality MST kernel (O(k^2) add-node)
//	bottleneck/ — D: bottleneck tracker along the marked root path
//	pcmark/    — E: prize-collecting mark cache
//	exttree/   — the shared extension-tree state (§3)
//
// Two external collaborators the engine consumes through interfaces have
// concrete reference implementations here rather than being out of scope
// for the whole repository:
//
//	stpgraph/  — the undirected weighted graph oracle (terminal/prize attrs)
//	distdata/  — the special-distance oracle (memoizing shortest-path search)
//
// stpfixture/ builds small deterministic stpgraph.Graph fixtures for
// examples and tests. There is no examples/ directory; the end-to-end
// scenarios are exercised as tests in extreduce/engine_test.go.
package extreduce
