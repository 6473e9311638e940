package distdata

import "math"

// Unknown is the sentinel SD value meaning "not computed". The engine's own
// oracle-boundary sentinel must equal this value (SPEC §6).
const Unknown float64 = -1

// FarAway is the sentinel SD value meaning "infeasibly large, treat as
// absent". It must be larger than any admissible path cost in the graphs
// this store serves.
const FarAway float64 = math.MaxFloat64 / 4

// Options configures a Store.
type Options struct {
	// CacheCapacityHint preallocates the memoization cache for roughly this
	// many vertex pairs.
	CacheCapacityHint int
}

// Option is a functional option for NewStore.
type Option func(*Options)

// WithCacheCapacityHint preallocates the SD memoization cache.
func WithCacheCapacityHint(n int) Option {
	return func(o *Options) { o.CacheCapacityHint = n }
}

func defaultOptions() Options {
	return Options{CacheCapacityHint: 0}
}
