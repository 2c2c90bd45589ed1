package vfind

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/vfind/dataset"
)

func benchmarkData(n int) ([]int32, int32) {
	rng := dataset.NewRNG(42)
	return rng.Ints(n, 0, 100), rng.Int32Between(0, 100)
}

func BenchmarkFind(b *testing.B) {
	for _, n := range []int{1 << 16, 1 << 22} {
		data, target := benchmarkData(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 4))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Find(data, 0, n-1, 1, target); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVectFind(b *testing.B) {
	for _, n := range []int{1 << 16, 1 << 22} {
		data, target := benchmarkData(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 4))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := VectFind(data, 0, n-1, Lanes, target); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkThreadFind(b *testing.B) {
	const n = 1 << 22
	data, target := benchmarkData(n)
	ctx := context.Background()

	for _, limit := range []int{NoLimit, 100} {
		for _, workers := range []int{2, DefaultWorkers} {
			b.Run(fmt.Sprintf("workers=%d/limit=%d", workers, limit), func(b *testing.B) {
				b.SetBytes(int64(n * 4))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := ThreadFind(ctx, data, 0, n-1, Lanes, target, limit, Vector, WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
