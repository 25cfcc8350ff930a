// Package xrand implements a small deterministic pseudo-random engine: two bit
// generators (xorshift64* and PCG32) and a suite of derived operations (bounded
// integers, ranges, shuffles, sampling, distributions, byte and base62 string
// generation) written once against a common bit-source interface.
//
// None of the generators are suitable for security-sensitive use.
package xrand

// Source is the contract between a bit generator and the derived operations.
// Everything else in this package is built exclusively on top of it.
//
// Implementations are stateful and are mutated in place by every draw. They are
// not safe for concurrent use: each instance must be owned by a single logical
// sequence of calls, and concurrent callers must use separate instances or
// synchronise externally.
type Source interface {
	// Uint64 returns the next 64-bit word of the stream.
	Uint64() uint64

	// Uint32 returns the next 32-bit word of the stream.
	Uint32() uint32

	// Float64 returns a uniform value in [0, 1) with 53 bits of precision.
	Float64() float64

	// FillBytes fills dst entirely with bytes from the stream.
	FillBytes(dst []byte)
}
