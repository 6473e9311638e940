// Package bottleneck implements the bottleneck tracker (component D): for
// a marked root path, it holds per-ancestor bottleneck distances (the
// maximum edge cost on the path from the ancestor down to the lowest
// degree->=3 descendant, with degree-2 chains accumulated and, in the
// prize-collecting variant, non-leaf terminal prizes subtracted), and
// answers bottleneck-distance queries for any vertex against that marked
// path.
//
// At most one root path may be marked at a time (SPEC §4.D); MarkRootPath
// and UnmarkRootPath must always be paired.
package bottleneck
