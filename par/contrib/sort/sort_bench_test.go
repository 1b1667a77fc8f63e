package sort

import (
	"slices"
	"testing"

	"github.com/ajroetker/parkernels/par/contrib/gen"
)

// Lengths mirror the sizes the kernels are tuned for: around the threshold
// and well above it.
var benchLengths = []struct {
	name string
	n    int
}{
	{"100K", 100_000},
	{"1M", 1_000_000},
	{"10M", 10_000_000},
}

func BenchmarkQuicksort(b *testing.B) {
	for _, l := range benchLengths {
		src := gen.Slice[int64](gen.New(1), l.n)
		data := make([]int64, l.n)
		b.Run(l.name, func(b *testing.B) {
			b.SetBytes(int64(l.n * 8))
			for i := 0; i < b.N; i++ {
				copy(data, src)
				Quicksort(data)
			}
		})
	}
}

func BenchmarkParallelQuicksort(b *testing.B) {
	for _, l := range benchLengths {
		src := gen.Slice[int64](gen.New(1), l.n)
		data := make([]int64, l.n)
		b.Run(l.name, func(b *testing.B) {
			b.SetBytes(int64(l.n * 8))
			for i := 0; i < b.N; i++ {
				copy(data, src)
				if err := ParallelQuicksort(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStdlibSort(b *testing.B) {
	for _, l := range benchLengths {
		src := gen.Slice[int64](gen.New(1), l.n)
		data := make([]int64, l.n)
		b.Run(l.name, func(b *testing.B) {
			b.SetBytes(int64(l.n * 8))
			for i := 0; i < b.N; i++ {
				copy(data, src)
				slices.Sort(data)
			}
		})
	}
}
