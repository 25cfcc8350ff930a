package xrand

import "math"

// Intrinsics is the floating-point collaborator consumed by the distribution
// samplers. Injecting it keeps the samplers deterministic under test; outside
// of tests, StdIntrinsics is the implementation to use.
type Intrinsics interface {
	Sqrt(x float64) float64
	Log(x float64) float64
	Sin(x float64) float64
	Cos(x float64) float64
}

// StdIntrinsics backs Intrinsics with the standard math package.
type StdIntrinsics struct{}

func (StdIntrinsics) Sqrt(x float64) float64 { return math.Sqrt(x) }
func (StdIntrinsics) Log(x float64) float64  { return math.Log(x) }
func (StdIntrinsics) Sin(x float64) float64  { return math.Sin(x) }
func (StdIntrinsics) Cos(x float64) float64  { return math.Cos(x) }

// uniformFloor keeps Box-Muller and inverse-CDF draws away from exactly zero,
// where Log diverges.
const uniformFloor = 1e-12

// NormalSampler draws normally distributed values by the Box-Muller transform.
// Each transform produces a pair of variates; the sampler caches the second
// and returns it, without touching the bit source, on the next call. The cache
// belongs to the sampler, not to the underlying generator, so a generator can
// be shared across samplers without their caches interfering.
type NormalSampler struct {
	src      Source
	intr     Intrinsics
	hasSpare bool
	spare    float64
}

// NewNormalSampler creates a sampler over the given bit source. A nil intr
// defaults to StdIntrinsics.
func NewNormalSampler(src Source, intr Intrinsics) NormalSampler {
	if intr == nil {
		intr = StdIntrinsics{}
	}
	return NormalSampler{src: src, intr: intr}
}

// Sample returns a draw from the normal distribution with the given mean and
// standard deviation. A non-positive stddev short-circuits to mean.
func (s *NormalSampler) Sample(mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}

	if s.hasSpare {
		s.hasSpare = false
		return mean + stddev*s.spare
	}

	u1 := s.src.Float64()
	u2 := s.src.Float64()
	if u1 < uniformFloor {
		u1 = uniformFloor
	}

	r := s.intr.Sqrt(-2 * s.intr.Log(u1))
	theta := 2 * math.Pi * u2

	z0 := r * s.intr.Cos(theta)
	s.spare = r * s.intr.Sin(theta)
	s.hasSpare = true

	return mean + stddev*z0
}

// Exponential returns a draw from the exponential distribution with the given
// rate, by inverting the CDF. A non-positive lambda returns zero. A nil intr
// defaults to StdIntrinsics.
func Exponential(src Source, intr Intrinsics, lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	if intr == nil {
		intr = StdIntrinsics{}
	}

	u := src.Float64()
	if u < uniformFloor {
		u = uniformFloor
	}

	return -intr.Log(1-u) / lambda
}
