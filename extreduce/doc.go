// Package extreduce implements the level lifecycle (component F) and the
// rule-out engine (component G): it orchestrates the multi-level distance
// store, CSR depot, DCMST kernel, bottleneck tracker and PC mark cache
// through one extension step at a time, and decides whether the current
// top-of-stack extension can be ruled out of an optimal Steiner tree.
//
// Engine is the public API surface (SPEC §6); it owns every piece of
// mutable state named in §5 and is not safe for concurrent use — the
// scheduling model is single-threaded cooperative, matching the source.
package extreduce
