package xrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Entropy is a platform entropy collaborator. A return value of zero signals
// that entropy is unavailable, in which case construction falls back to a
// clock-derived seed.
type Entropy interface {
	Entropy64() uint64
}

// Clock is a monotonic time collaborator used only for the entropy fallback.
type Clock interface {
	NowNanos() uint64
}

// SystemEntropy reads from the operating system entropy pool.
type SystemEntropy struct{}

func (SystemEntropy) Entropy64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// SystemClock reports monotonic nanoseconds since process start.
type SystemClock struct{}

var processStart = time.Now()

func (SystemClock) NowNanos() uint64 {
	return uint64(time.Since(processStart).Nanoseconds())
}

// EntropySeed derives a construction seed from the given collaborators. If the
// entropy source is unavailable (nil, or reporting zero) the seed is instead
// mixed from the monotonic clock. The fallback varies locally but is low
// quality; it must never be treated as cryptographically strong.
func EntropySeed(e Entropy, c Clock) uint64 {
	if e != nil {
		if v := e.Entropy64(); v != 0 {
			return v
		}
	}

	var ns uint64
	if c != nil {
		ns = c.NowNanos()
	}

	return SplitMix64(ns ^ 0xD1B54A32D192ED03)
}
