package xrand_test

import (
	"sort"

	"github.com/renproject/xrand"
	"github.com/renproject/xrand/pcg32"
	"github.com/renproject/xrand/xorshift"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Combinatorial operations", func() {
	Context("shuffling", func() {
		It("should preserve the multiset of elements", func() {
			rng := xorshift.FromSeed(10)

			for trial := 0; trial < 50; trial++ {
				xs := sequentialInts(20)
				xrand.Shuffle(rng, xs)

				sorted := append([]int{}, xs...)
				sort.Ints(sorted)
				Expect(sorted).To(Equal(sequentialInts(20)))
			}
		})

		It("should leave sequences shorter than two elements unchanged", func() {
			rng := xorshift.FromSeed(10)

			empty := []int{}
			xrand.Shuffle(rng, empty)
			Expect(empty).To(BeEmpty())

			one := []int{42}
			xrand.Shuffle(rng, one)
			Expect(one).To(Equal([]int{42}))
		})

		It("should produce the same permutation for the same seed", func() {
			first := sequentialInts(50)
			second := sequentialInts(50)
			xrand.Shuffle(xorshift.FromSeed(11), first)
			xrand.Shuffle(xorshift.FromSeed(11), second)

			Expect(first).To(Equal(second))
		})

		It("should eventually move something for a reasonably long sequence", func() {
			rng := pcg32.FromSeed(12, 0)
			xs := sequentialInts(50)
			xrand.Shuffle(rng, xs)

			Expect(xs).NotTo(Equal(sequentialInts(50)))
		})
	})

	Context("choosing", func() {
		It("should report absence for an empty sequence", func() {
			rng := xorshift.FromSeed(13)
			_, ok := xrand.Choose(rng, []string{})
			Expect(ok).To(BeFalse())
		})

		It("should return an element of the sequence", func() {
			rng := xorshift.FromSeed(13)
			xs := []string{"a", "b", "c", "d"}
			for i := 0; i < 100; i++ {
				v, ok := xrand.Choose(rng, xs)
				Expect(ok).To(BeTrue())
				Expect(v).To(BeElementOf(xs))
			}
		})
	})

	Context("reservoir sampling", func() {
		It("should return min(k, n) elements", func() {
			rng := xorshift.FromSeed(14)
			xs := sequentialInts(10)

			Expect(xrand.SampleK(rng, xs, 3)).To(HaveLen(3))
			Expect(xrand.SampleK(rng, xs, 10)).To(HaveLen(10))
			Expect(xrand.SampleK(rng, xs, 25)).To(HaveLen(10))
			Expect(xrand.SampleK(rng, xs, 0)).To(HaveLen(0))
			Expect(xrand.SampleK(rng, xs, -1)).To(HaveLen(0))
		})

		It("should only return elements of the input, without duplicates", func() {
			rng := xorshift.FromSeed(14)
			xs := sequentialInts(100)

			sample := xrand.SampleK(rng, xs, 10)
			seen := map[int]bool{}
			for _, v := range sample {
				Expect(v).To(BeElementOf(xs))
				Expect(seen[v]).To(BeFalse())
				seen[v] = true
			}
		})

		It("should not modify the input", func() {
			rng := xorshift.FromSeed(15)
			xs := sequentialInts(30)
			xrand.SampleK(rng, xs, 5)

			Expect(xs).To(Equal(sequentialInts(30)))
		})

		It("should include every element eventually", func() {
			rng := pcg32.FromSeed(15, 1)
			xs := sequentialInts(10)

			seen := map[int]bool{}
			for i := 0; i < 500; i++ {
				for _, v := range xrand.SampleK(rng, xs, 3) {
					seen[v] = true
				}
			}

			Expect(seen).To(HaveLen(10))
		})
	})

	Context("weighted selection", func() {
		It("should report no selection for an empty weight set", func() {
			rng := xorshift.FromSeed(16)
			i, ok := xrand.WeightedIndex(rng, []float64{})
			Expect(ok).To(BeFalse())
			Expect(i).To(Equal(-1))
		})

		It("should report no selection when any weight is negative", func() {
			rng := xorshift.FromSeed(16)
			_, ok := xrand.WeightedIndex(rng, []float64{-1.0})
			Expect(ok).To(BeFalse())

			_, ok = xrand.WeightedIndex(rng, []float64{1.0, -0.5, 2.0})
			Expect(ok).To(BeFalse())
		})

		It("should report no selection when the total weight is zero", func() {
			rng := xorshift.FromSeed(16)
			_, ok := xrand.WeightedIndex(rng, []float64{0, 0, 0})
			Expect(ok).To(BeFalse())
		})

		It("should always pick the only positive weight", func() {
			rng := xorshift.FromSeed(17)
			for trial := 0; trial < 100; trial++ {
				i, ok := xrand.WeightedIndex(rng, []float64{0, 0, 3.5, 0})
				Expect(ok).To(BeTrue())
				Expect(i).To(Equal(2))
			}
		})

		It("should favour heavier weights", func() {
			rng := xorshift.FromSeed(17)
			counts := make([]int, 2)
			n := 10000
			for trial := 0; trial < n; trial++ {
				i, ok := xrand.WeightedIndex(rng, []float64{1, 9})
				Expect(ok).To(BeTrue())
				counts[i]++
			}

			// Index 1 carries 90% of the weight.
			Expect(counts[1]).To(BeNumerically(">", 8500))
			Expect(counts[0]).To(BeNumerically(">", 0))
		})
	})
})

func sequentialInts(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}
