// Package exttree implements the shared extension-tree state (SPEC §3): the
// rooted tree of currently-committed candidate expansions, its leaves,
// per-vertex degree and parent pointers, and running
// tree-wide cost/depth.
//
// The engine owns exactly one Tree per run. Other components (bottleneck,
// pcmark, extreduce) read it through plain Go method calls rather than
// copying state; Snapshot exists purely so tests can verify push/pop
// symmetry (SPEC §8 property 4) without reaching into private fields.
package exttree
