package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/renproject/xrand"
	"github.com/renproject/xrand/pcg32"
	"github.com/renproject/xrand/xorshift"
)

const n = 10000000

func main() {
	defer profile.Start().Stop()

	results := []result{}

	results = append(results, benchSource("xorshift64*", xorshift.FromSeed(1))...)
	results = append(results, benchSource("pcg32", pcg32.FromSeed(1, 1))...)

	filename := fmt.Sprintf("%v.metrics", n)
	reportMetrics(results, filename)
}

type result struct {
	generator string
	op        string
	elapsed   time.Duration
}

func benchSource(name string, src xrand.Source) []result {
	results := make([]result, 0, 6)
	bench := func(op string, f func()) {
		start := time.Now()
		f()
		results = append(results, result{generator: name, op: op, elapsed: time.Since(start)})
	}

	var sinkU64 uint64
	var sinkF64 float64

	bench("uint64", func() {
		for i := 0; i < n; i++ {
			sinkU64 += src.Uint64()
		}
	})

	bench("uint64-below", func() {
		for i := 0; i < n; i++ {
			sinkU64 += xrand.Uint64Below(src, 1000)
		}
	})

	bench("float64", func() {
		for i := 0; i < n; i++ {
			sinkF64 += src.Float64()
		}
	})

	sampler := xrand.NewNormalSampler(src, nil)
	bench("normal", func() {
		for i := 0; i < n; i++ {
			sinkF64 += sampler.Sample(0, 1)
		}
	})

	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}
	bench("shuffle-1k", func() {
		for i := 0; i < n/1000; i++ {
			xrand.Shuffle(src, xs)
		}
	})

	bench("base62-32", func() {
		for i := 0; i < n/32; i++ {
			sinkU64 += uint64(len(xrand.StringBase62(src, 32)))
		}
	})

	// Keep the sinks alive so the loops are not eliminated.
	if sinkU64 == 0 && sinkF64 == 0 {
		fmt.Println("degenerate sink values")
	}

	return results
}

func reportMetrics(results []result, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	columns := "   Generator |           Op |         Time |      ns/draw\n"
	separator := "-----------------------------------------------------\n"
	rowStr := "%12v | %12v | %12v | %12.2f\n"

	fmt.Fprint(file, columns)
	fmt.Fprint(file, separator)
	for _, r := range results {
		fmt.Fprintf(file, rowStr, r.generator, r.op, r.elapsed, float64(r.elapsed.Nanoseconds())/float64(n))
	}
}
