// SPDX-License-Identifier: MIT

// Package sparse_test provides benchmarks for the CSR kernels, using
// deterministic random fill.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.CSR
	sinkF float64
	sinkG [][]float64
)

func BenchmarkNewFromDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			grid := randomGrid(n, n, 0.05, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = mustCSR(b, grid)
			}
		})
	}
}

func BenchmarkToDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustCSR(b, randomGrid(n, n, 0.05, 7))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkG = m.ToDense()
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustCSR(b, randomGrid(n, n, 0.05, 11))
			y := mustCSR(b, randomGrid(n, n, 0.05, 22))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustCSR(b, randomGrid(n, n, 0.1, 1))
			y := mustCSR(b, randomGrid(n, n, 0.1, 2))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, s := range []sparse.DetStrategy{sparse.DetCofactor, sparse.DetParallel, sparse.DetLU} {
		b.Run(s.String(), func(b *testing.B) {
			m := mustCSR(b, randomGrid(8, 8, 0.8, 3), sparse.WithDeterminantStrategy(s))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				det, err := m.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = det
			}
		})
	}
}
