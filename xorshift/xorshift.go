// Package xorshift implements the xorshift64* generator: a 64-bit xorshift
// state update whose output is the updated state scrambled by a fixed odd
// multiplier. It is fast and statistically sound for simulation, and not
// suitable for security-sensitive use.
package xorshift

import (
	"encoding/binary"

	"github.com/renproject/xrand"
)

const (
	a = 12
	b = 25
	c = 27

	multiplier = 2685821657736338717

	// Substituted for a mixed seed of zero: the zero state is a fixed point
	// of the xorshift update.
	zeroStateSubstitute = 0x9E3779B97F4A7C15
)

// Rng is an xorshift64* generator. The state is never zero. Rng implements
// xrand.Source and is not safe for concurrent use.
type Rng struct {
	state uint64
}

// FromSeed creates a generator from the given seed. The seed is diffused
// through xrand.SplitMix64 first, so adjacent seeds do not produce correlated
// streams; any seed yields a valid nonzero state.
func FromSeed(seed uint64) *Rng {
	state := xrand.SplitMix64(seed)
	if state == 0 {
		state = zeroStateSubstitute
	}
	return &Rng{state: state}
}

// FromEntropy creates a generator seeded from the platform entropy pool,
// falling back to a clock-derived seed when entropy is unavailable.
func FromEntropy() *Rng {
	return FromEntropySource(xrand.SystemEntropy{}, xrand.SystemClock{})
}

// FromEntropySource is FromEntropy with injected collaborators.
func FromEntropySource(e xrand.Entropy, c xrand.Clock) *Rng {
	return FromSeed(xrand.EntropySeed(e, c))
}

// Uint64 advances the state by three xorshifts and returns the updated state
// multiplied by the fixed odd constant. The multiplication output is not fed
// back into the state.
func (rng *Rng) Uint64() uint64 {
	s := rng.state
	s ^= s >> a
	s ^= s << b
	s ^= s >> c
	rng.state = s

	return s * multiplier
}

// Uint32 returns the high 32 bits of one Uint64 draw.
func (rng *Rng) Uint32() uint32 {
	return uint32(rng.Uint64() >> 32)
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits of one
// Uint64 draw.
func (rng *Rng) Float64() float64 {
	return float64(rng.Uint64()>>11) * 0x1p-53
}

// FillBytes fills dst with successive Uint64 words packed little-endian, with
// a final partial word written byte by byte.
func (rng *Rng) FillBytes(dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, rng.Uint64())
		dst = dst[8:]
	}

	if len(dst) > 0 {
		w := rng.Uint64()
		for i := range dst {
			dst[i] = byte(w >> (8 * i))
		}
	}
}
