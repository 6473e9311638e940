// Package dcmst implements the dynamic-cardinality MST kernel (component
// C): given a prior minimum spanning tree P over k nodes and an adjacency-
// cost vector from a new node to each node of P, it builds or extends an
// MST on k+1 nodes in O(k²). The scratch buffers are allocated once at
// construction, but every AddNode/AddNodeInplace call allocates a fresh
// output CSR.
//
// The core algorithm is the classic recursive edge-swap insertion: the new
// node attaches via its cheapest incident edge, and for every existing node
// the cycle created by a cheaper alternative link is resolved by swapping
// out the heaviest cycle edge. Kernel reuses a fixed-size scratch buffer
// across calls (SPEC §9 design notes: "DCMST buffer is a process-wide
// reusable arena"); it is not re-entrant.
package dcmst
