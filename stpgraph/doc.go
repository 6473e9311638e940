// Package stpgraph defines the undirected, weighted graph type consumed by
// the extended-reduction engine: vertices carry terminal/prize attributes
// for the prize-collecting variant, edges carry real-valued costs, and the
// graph exposes a compressed-sparse-row adjacency view for kernels that need
// a flat, allocation-free representation of a vertex's incident edges.
//
// Graph is safe for concurrent readers and a single writer: muVert guards
// the vertex catalog, muEdgeAdj guards edges and adjacency. Construction
// uses the functional-options pattern (GraphOption).
package stpgraph
