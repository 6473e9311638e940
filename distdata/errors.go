package distdata

import "errors"

// Sentinel errors for distdata operations.
var (
	// ErrNilGraph indicates a nil graph was passed to NewStore.
	ErrNilGraph = errors.New("distdata: graph is nil")

	// ErrVertexNotFound names a query on a vertex absent from the
	// underlying graph. Store's special-distance queries do not return it:
	// they report that case as Unknown.
	ErrVertexNotFound = errors.New("distdata: vertex not found")
)
