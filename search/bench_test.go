package search_test

import (
	"testing"

	"github.com/katalvlaran/arith24/search"
)

// benchmarkHand runs fn on values b.N times and fails on unexpected errors.
func benchmarkHand(b *testing.B, values []float64, fn func([]float64) error) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fn(values); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

// BenchmarkExists_Unsolvable measures a full tree walk without traces.
func BenchmarkExists_Unsolvable(b *testing.B) {
	benchmarkHand(b, []float64{1, 1, 1, 1}, func(v []float64) error {
		_, err := search.Exists(v, 24)
		return err
	})
}

// BenchmarkFindFirst_Fractional measures a deep hit with trace bookkeeping.
func BenchmarkFindFirst_Fractional(b *testing.B) {
	benchmarkHand(b, []float64{3, 3, 8, 8}, func(v []float64) error {
		_, _, err := search.FindFirst(v, 24)
		return err
	})
}

// BenchmarkFindAll_Solvable measures a full tree walk collecting every trace.
func BenchmarkFindAll_Solvable(b *testing.B) {
	benchmarkHand(b, []float64{1, 2, 3, 4}, func(v []float64) error {
		_, err := search.FindAll(v, 24)
		return err
	})
}

// BenchmarkFindAll_FiveValues measures the N=5 tree.
func BenchmarkFindAll_FiveValues(b *testing.B) {
	benchmarkHand(b, []float64{1, 2, 3, 4, 5}, func(v []float64) error {
		_, err := search.FindAll(v, 24)
		return err
	})
}
