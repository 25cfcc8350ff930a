package xrand

// Shuffle permutes xs in place using the Fisher-Yates (Durstenfeld) algorithm,
// so that every permutation is equally likely. Sequences shorter than two
// elements are left unchanged.
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i >= 1; i-- {
		j := Uint64Below(src, uint64(i)+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Choose returns a uniformly chosen element of xs. The second return value is
// false when xs is empty.
func Choose[T any](src Source, xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return xs[Uint64Below(src, uint64(len(xs)))], true
}

// SampleK draws a uniform sample of min(k, len(xs)) elements from xs without
// replacement, using single-pass reservoir sampling: every subset of that size
// is equally likely. The input is not modified.
func SampleK[T any](src Source, xs []T, k int) []T {
	if k < 0 {
		k = 0
	}

	kk := k
	if len(xs) < kk {
		kk = len(xs)
	}

	result := make([]T, kk)
	copy(result, xs[:kk])

	for i := kk; i < len(xs); i++ {
		j := Uint64Below(src, uint64(i)+1)
		if j < uint64(kk) {
			result[j] = xs[i]
		}
	}

	return result
}

// WeightedIndex selects an index with probability proportional to its weight.
// No selection is possible when weights is empty, when any weight is negative,
// or when the total weight is not positive; the second return value is then
// false and the index is -1.
func WeightedIndex(src Source, weights []float64) (int, bool) {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return -1, false
		}
		total += w
	}

	if !(total > 0) {
		return -1, false
	}

	t := Float64Range(src, 0, total)
	for i, w := range weights {
		if t < w {
			return i, true
		}
		t -= w
	}

	// Floating-point drift can exhaust the walk without a hit; the last index
	// is the documented guard.
	return len(weights) - 1, true
}
