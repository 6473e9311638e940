package extreduce

import "errors"

// Sentinel errors for extreduce operations. Precondition violations (SPEC
// §7) are fatal and returned rather than panicked here, since every
// top-level Engine method already returns an error for its ordinary
// control flow (unlike the lower leaf packages, which panic because their
// callers are always this package, in full control of call order).
var (
	ErrNilGraph     = errors.New("extreduce: graph oracle must not be nil")
	ErrNilDist      = errors.New("extreduce: distance oracle must not be nil")
	ErrNoRootLevel  = errors.New("extreduce: add_root_level was never called")
	ErrRootLevelSet = errors.New("extreduce: add_root_level was already called")
	ErrNoLevel      = errors.New("extreduce: no level is currently open; call LevelInit first")
	ErrLevelOpen    = errors.New("extreduce: a level is already open; close or remove it first")
	ErrUnknownLeaf  = errors.New("extreduce: candidate edge's parent is not in the current tree")
	ErrNoComponent  = errors.New("extreduce: no component MST is open on the current level")
)
