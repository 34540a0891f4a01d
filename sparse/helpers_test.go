// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the CSR kernels.
//   - Keep all data finite and well-formed so the numeric policy never interferes.

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// tol is the absolute tolerance used for float comparisons across tests.
const tol = 1e-9

// Fixtures shared by several tests.
var (
	lowerTriangular = [][]float64{
		{5, 0, 0},
		{0, 8, 0},
		{3, 0, 6},
	}
	detFixture = [][]float64{
		{2, 3, 1},
		{4, 1, 3},
		{3, 2, 4},
	}
	ascending = [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	descending = [][]float64{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}
)

// mustCSR compresses grid or fails the test.
func mustCSR(tb testing.TB, grid [][]float64, opts ...sparse.Option) *sparse.CSR {
	tb.Helper()
	m, err := sparse.NewFromDense(grid, opts...)
	require.NoError(tb, err)

	return m
}

// requireDenseClose asserts two grids have the same shape and agree cell-wise within tol.
func requireDenseClose(tb testing.TB, want, got [][]float64) {
	tb.Helper()
	require.Len(tb, got, len(want), "row count")
	for i := range want {
		require.Len(tb, got[i], len(want[i]), "row %d length", i)
		for j := range want[i] {
			require.InDelta(tb, want[i][j], got[i][j], tol, "cell (%d,%d)", i, j)
		}
	}
}

// requireCSRInvariants checks the structural invariants every CSR must hold.
func requireCSRInvariants(tb testing.TB, m *sparse.CSR) {
	tb.Helper()
	values, colIdx, rowPtr := m.Values(), m.ColumnIndex(), m.RowPointer()
	require.Len(tb, colIdx, len(values))
	require.Len(tb, rowPtr, m.Rows()+1)
	require.Equal(tb, 0, rowPtr[0])
	require.Equal(tb, len(values), rowPtr[m.Rows()])
	for r := 0; r < m.Rows(); r++ {
		require.LessOrEqual(tb, rowPtr[r], rowPtr[r+1], "rowPtr monotone at %d", r)
		for k := rowPtr[r]; k < rowPtr[r+1]; k++ {
			require.NotZero(tb, values[k], "stored zero at %d", k)
			require.GreaterOrEqual(tb, colIdx[k], 0)
			require.Less(tb, colIdx[k], m.Cols())
			if k > rowPtr[r] {
				require.Less(tb, colIdx[k-1], colIdx[k], "row %d not column-sorted", r)
			}
		}
	}
}

// randomGrid returns an r×c grid of small integers with roughly `density`
// non-zero cells, deterministic for a given seed.
func randomGrid(r, c int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			if rng.Float64() < density {
				grid[i][j] = float64(rng.Intn(11) - 5) // [-5, 5], may still be 0
			}
		}
	}

	return grid
}

// laplaceLastRow is an independent determinant reference: expansion along
// the LAST row instead of the first.
func laplaceLastRow(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	last := n - 1
	var det float64
	for c := 0; c < n; c++ {
		minor := make([][]float64, 0, n-1)
		for i := 0; i < last; i++ {
			row := make([]float64, 0, n-1)
			for j := 0; j < n; j++ {
				if j != c {
					row = append(row, a[i][j])
				}
			}
			minor = append(minor, row)
		}
		sign := 1.0
		if (last+c)%2 == 1 {
			sign = -1
		}
		det += sign * a[last][c] * laplaceLastRow(minor)
	}

	return det
}

// relTol scales tol by the magnitude of want for LU comparisons.
func relTol(want float64) float64 { return tol * math.Max(1, math.Abs(want)) }
