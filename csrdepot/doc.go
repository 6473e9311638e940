// Package csrdepot implements the CSR depot (component B): a stack of
// compressed-sparse-row graphs, each an undirected minimum spanning tree
// over a subset of extension-tree leaves, with an empty-top / marked-top
// lifecycle.
//
// Nodes carry identity via their position in the owning leaves array, not
// via global vertex IDs (SPEC §4.B): a CSR here is addressed purely by
// integer node position, matching the layout the dynamic-cardinality MST
// kernel (package dcmst) builds and consumes. Only the top CSR of the stack
// may be mutated; every CSR below it is frozen the moment a new one is
// pushed.
package csrdepot
