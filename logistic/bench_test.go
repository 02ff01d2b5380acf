// Package logistic_test provides benchmarks for model construction and
// evaluation over growing item banks.
package logistic_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/irt/logistic"
	"github.com/katalvlaran/irt/ndarray"
)

var benchItems = []int{16, 256, 4096}

// sinks to defeat dead-code elimination
var (
	sinkModel *logistic.Model
	sinkArr   *ndarray.Array
)

func randItems(n int, seed int64) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	a, b := make([]float64, n), make([]float64, n)
	for i := range a {
		a[i] = 0.5 + rng.Float64()*2
		b[i] = rng.NormFloat64()
	}
	return a, b
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchItems {
		b.Run(fmt.Sprintf("items=%d", n), func(b *testing.B) {
			slop, threshold := randItems(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := logistic.New(slop, threshold, 0.3)
				if err != nil {
					b.Fatal(err)
				}
				sinkModel = m
			}
		})
	}
}

func BenchmarkSecondDerivative(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchItems {
		b.Run(fmt.Sprintf("items=%d", n), func(b *testing.B) {
			slop, threshold := randItems(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := logistic.New(slop, threshold, 0.3)
				if err != nil {
					b.Fatal(err)
				}
				sinkArr = m.SecondDerivative()
			}
		})
	}
}
