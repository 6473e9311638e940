// Package distdata implements the distance-data oracle consumed by the
// extended-reduction engine: special distances (SD) between two vertices,
// optionally recomputed with a set of edges temporarily forbidden (used by
// the engine's equality rule-out mechanism).
//
// A special distance upper-bounds the cost of any path that could replace a
// given tree edge; it is computed here as ordinary shortest-path distance
// over the underlying graph, memoized per vertex pair. Unknown results are
// encoded as -1, infeasible ones as FarAway, following the same sentinel
// convention the engine's own stacks use (sentinel documented once at the
// oracle boundary per the module's design notes).
package distdata
