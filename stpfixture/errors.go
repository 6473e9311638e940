package stpfixture

import "errors"

// Sentinel errors for stpfixture operations.
var (
	// ErrTooFewVertices indicates a constructor's vertex count is below its
	// minimum domain (e.g. Path(n) with n<2).
	ErrTooFewVertices = errors.New("stpfixture: too few vertices")

	// ErrInvalidProbability indicates RandomSparse's p is outside [0,1].
	ErrInvalidProbability = errors.New("stpfixture: probability out of [0,1]")

	// ErrNeedRandSource indicates RandomSparse was asked to sample with
	// 0<p<1 but no RNG was configured via WithSeed.
	ErrNeedRandSource = errors.New("stpfixture: random source required")
)
