// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

var allStrategies = []sparse.DetStrategy{
	sparse.DetAuto, sparse.DetCofactor, sparse.DetParallel, sparse.DetLU,
}

func TestDeterminant_Fixtures(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		grid [][]float64
		want float64
	}{
		"3x3":              {detFixture, -20},
		"1x1":              {[][]float64{{7}}, 7},
		"2x2":              {[][]float64{{1, 2}, {3, 4}}, -2},
		"singular":         {ascending, 0},
		"lower triangular": {lowerTriangular, 240},
		"zero first row":   {[][]float64{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}, 0},
		"identity 4":       {[][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
	} {
		for _, s := range allStrategies {
			t.Run(fmt.Sprintf("%s/%s", name, s), func(t *testing.T) {
				m := mustCSR(t, tc.grid, sparse.WithDeterminantStrategy(s))
				got, err := m.Determinant()
				require.NoError(t, err)
				require.InDelta(t, tc.want, got, tol)
			})
		}
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	m := mustCSR(t, [][]float64{{1, 0}, {0, 1}, {4, 5}}, sparse.WithLogger(zap.New(core)))

	det, err := m.Determinant()
	require.ErrorIs(t, err, sparse.ErrNonSquare)
	require.Zero(t, det)
	require.Equal(t, 1, logs.FilterMessage("matrix is not square").Len())

	_, err = sparse.Det(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestDeterminant_MatchesIndependentReferences checks first-row expansion
// against last-row Laplace expansion and gonum's LU on random sparse inputs.
func TestDeterminant_MatchesIndependentReferences(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			grid := randomGrid(n, n, 0.6, seed*31+int64(n))
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				m := mustCSR(t, grid, sparse.WithDeterminantStrategy(sparse.DetCofactor))
				got, err := m.Determinant()
				require.NoError(t, err)

				require.InDelta(t, laplaceLastRow(grid), got, tol)
				lu := mat.Det(m.Gonum())
				require.InDelta(t, lu, got, relTol(got))
			})
		}
	}
}

func TestDeterminant_ParallelIsBitIdentical(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 8; n++ {
		grid := randomGrid(n, n, 0.7, int64(1000+n))
		seq, err := mustCSR(t, grid, sparse.WithDeterminantStrategy(sparse.DetCofactor)).Determinant()
		require.NoError(t, err)

		for _, w := range []int{1, 2, 8} {
			par, err := mustCSR(t, grid,
				sparse.WithDeterminantStrategy(sparse.DetParallel),
				sparse.WithWorkers(w),
			).Determinant()
			require.NoError(t, err)
			require.Equal(t, seq, par, "n=%d workers=%d", n, w)
		}
	}
}

func TestDeterminant_AutoSwitchesToLU(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	n := sparse.AutoCofactorMax + 4
	grid := randomGrid(n, n, 0.5, 77)
	for i := 0; i < n; i++ {
		grid[i][i] = 10 // diagonally dominant: well-conditioned
	}
	m := mustCSR(t, grid, sparse.WithLogger(zap.New(core)))

	got, err := m.Determinant()
	require.NoError(t, err)
	want := mat.Det(m.Gonum())
	require.InDelta(t, want, got, relTol(want))

	entries := logs.FilterMessage("computing determinant").All()
	require.Len(t, entries, 1)
	require.Equal(t, "lu", entries[0].ContextMap()["strategy"])
}

func TestDeterminant_SurvivesOperations(t *testing.T) {
	t.Parallel()

	// det(A+B) computed on a matrix produced by Add (trusted constructor path).
	a := mustCSR(t, detFixture)
	b, err := sparse.Identity(3)
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)

	got, err := sum.Determinant()
	require.NoError(t, err)
	require.InDelta(t, laplaceLastRow(sum.ToDense()), got, tol)
}

func TestDeterminant_NonFinitePropagates(t *testing.T) {
	t.Parallel()

	// det = 0·Inf - 1·1 + 0·(1·0 - Inf·0): NaN, not -1.
	grid := [][]float64{
		{0, 1, 0},
		{1, math.Inf(1), 0},
		{0, 0, 1},
	}
	for _, s := range []sparse.DetStrategy{sparse.DetCofactor, sparse.DetParallel} {
		m := mustCSR(t, grid, sparse.WithNoValidateNaNInf(), sparse.WithDeterminantStrategy(s))
		det, err := m.Determinant()
		require.NoError(t, err)
		require.True(t, math.IsNaN(det), "%s: got %g", s, det)
	}

	// Finite input still skips zero entries and stays exact.
	finite := mustCSR(t, [][]float64{{0, 1, 0}, {1, 7, 0}, {0, 0, 1}})
	det, err := finite.Determinant()
	require.NoError(t, err)
	require.Equal(t, -1.0, det)
}
