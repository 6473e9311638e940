package stpgraph

import "errors"

// Sentinel errors for stpgraph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("stpgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("stpgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("stpgraph: edge not found")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop; stpgraph
	// graphs are simple (no loops, no parallel edges) by construction.
	ErrLoopNotAllowed = errors.New("stpgraph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an attempt to add a parallel edge
	// between two vertices that already share an edge.
	ErrMultiEdgeNotAllowed = errors.New("stpgraph: parallel edge not allowed")

	// ErrNegativeWeight indicates a negative edge weight was supplied; the
	// engine's special-distance machinery assumes non-negative costs.
	ErrNegativeWeight = errors.New("stpgraph: negative edge weight")

	// ErrNegativePrize indicates a negative vertex prize was supplied.
	ErrNegativePrize = errors.New("stpgraph: negative vertex prize")
)
