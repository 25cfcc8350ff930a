package xrand

import "math"

// Uint64Below returns a uniform value in [0, bound), removing modulo bias by
// rejection sampling: draws at or above the largest multiple of bound are
// discarded and redrawn. The retry loop has no worst-case bound, but the
// rejection probability is at most bound/2^64 per draw, so in expectation it
// terminates almost immediately.
//
// A bound of zero returns zero. This degenerate policy is deliberate and
// callers rely on it; it is not an error.
func Uint64Below(src Source, bound uint64) uint64 {
	if bound == 0 {
		return 0
	}

	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		r := src.Uint64()
		if r < limit {
			return r % bound
		}
	}
}

// Int64Range returns a uniform value in [min, max). If max <= min it returns
// min. The span is computed in uint64 so that ranges wider than the int64
// maximum (e.g. math.MinInt64 to math.MaxInt64) do not overflow.
func Int64Range(src Source, min, max int64) int64 {
	if max <= min {
		return min
	}

	span := uint64(max) - uint64(min)
	return min + int64(Uint64Below(src, span))
}

// Float64Range returns a uniform value in [min, max). If the range is empty or
// inverted (including NaN bounds) it returns min.
func Float64Range(src Source, min, max float64) float64 {
	if !(max > min) {
		return min
	}
	return min + (max-min)*src.Float64()
}

// Bernoulli performs a single trial with success probability p. Probabilities
// at or below zero always fail and probabilities at or above one always
// succeed.
func Bernoulli(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}
