// Package pcg32 implements the PCG32 generator (64-bit LCG state, 32-bit
// XSH-RR output). It supports multiple independent streams selected at
// construction time, and is not suitable for security-sensitive use.
package pcg32

import (
	"encoding/binary"
	"math/bits"

	"github.com/renproject/xrand"
)

const multiplier = 6364136223846793005

// Rng is a PCG32 generator. The increment is always odd, which gives the
// underlying LCG full period. Rng implements xrand.Source and is not safe for
// concurrent use.
type Rng struct {
	state uint64
	inc   uint64
}

// FromSeed creates a generator on the stream selected by seq. Generators with
// the same seed but different stream selectors produce independent sequences.
func FromSeed(seed, seq uint64) *Rng {
	rng := &Rng{state: 0, inc: (seq << 1) | 1}

	// Step once before and once after adding the seed, so that a zero seed
	// does not start the LCG at its zero state.
	rng.Uint32()
	rng.state += seed
	rng.Uint32()

	return rng
}

// FromEntropy creates a generator seeded from the platform entropy pool,
// falling back to a clock-derived seed when entropy is unavailable. The seed
// and the stream selector are drawn independently, so entropy-constructed
// instances land on distinct streams.
func FromEntropy() *Rng {
	return FromEntropySource(xrand.SystemEntropy{}, xrand.SystemClock{})
}

// FromEntropySource is FromEntropy with injected collaborators.
func FromEntropySource(e xrand.Entropy, c xrand.Clock) *Rng {
	seed := xrand.EntropySeed(e, c)
	seq := xrand.EntropySeed(e, c)
	return FromSeed(seed, seq)
}

// Uint32 advances the LCG and permutes the previous state into the output
// word: an xorshift folds the high bits down, and the top five bits of the
// state pick a data-dependent right rotation.
func (rng *Rng) Uint32() uint32 {
	old := rng.state
	rng.state = old*multiplier + rng.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)

	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 composes two Uint32 draws, high word first.
func (rng *Rng) Uint64() uint64 {
	hi := uint64(rng.Uint32())
	lo := uint64(rng.Uint32())
	return (hi << 32) | lo
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits of one
// composed Uint64 draw.
func (rng *Rng) Float64() float64 {
	return float64(rng.Uint64()>>11) * 0x1p-53
}

// FillBytes fills dst with successive Uint32 words packed little-endian, four
// bytes per draw, with a final partial word written byte by byte.
func (rng *Rng) FillBytes(dst []byte) {
	for len(dst) >= 4 {
		binary.LittleEndian.PutUint32(dst, rng.Uint32())
		dst = dst[4:]
	}

	if len(dst) > 0 {
		w := rng.Uint32()
		for i := range dst {
			dst[i] = byte(w >> (8 * i))
		}
	}
}
