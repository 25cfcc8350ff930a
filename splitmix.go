package xrand

// SplitMix64 diffuses an arbitrary 64-bit seed into a well-distributed state
// word. It is used only at construction time, so that weak or adjacent seeds do
// not produce correlated streams.
func SplitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
