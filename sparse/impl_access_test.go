// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

func TestElement_OneBased(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, lowerTriangular)
	for _, tc := range []struct {
		row, col int
		want     float64
	}{
		{1, 1, 5}, {2, 2, 8}, {3, 3, 6}, {1, 2, 0}, {3, 1, 3}, {2, 3, 0},
	} {
		got, err := m.Element(tc.row, tc.col)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, tol, "Element(%d,%d)", tc.row, tc.col)
	}
}

func TestElement_OutOfRange(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	for _, idx := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 4}, {-1, -1}} {
		v, err := m.Element(idx[0], idx[1])
		require.ErrorIs(t, err, sparse.ErrOutOfRange, "Element(%d,%d)", idx[0], idx[1])
		require.Zero(t, v)
	}
}

func TestAt_ZeroBased(t *testing.T) {
	t.Parallel()

	m := mustCSR(t, lowerTriangular)
	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		grid [][]float64
		want float64
	}{
		"lower triangular": {lowerTriangular, 19},
		"ascending":        {ascending, 15},
		"empty diagonal":   {[][]float64{{0, 1}, {1, 0}}, 0},
		"single cell":      {[][]float64{{-4}}, -4},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := mustCSR(t, tc.grid).Trace()
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestTrace_NonSquareWarnsAndFails(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	m := mustCSR(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, sparse.WithLogger(zap.New(core)))

	tr, err := m.Trace()
	require.ErrorIs(t, err, sparse.ErrNonSquare)
	require.Zero(t, tr)

	entries := logs.FilterMessage("matrix is not square").All()
	require.Len(t, entries, 1)
	require.Equal(t, "Trace", entries[0].ContextMap()["op"])
}

func TestTrace_Nil(t *testing.T) {
	t.Parallel()

	_, err := sparse.Trace(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestElementAndAt_Nil(t *testing.T) {
	t.Parallel()

	var m *sparse.CSR
	_, err := m.Element(1, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
