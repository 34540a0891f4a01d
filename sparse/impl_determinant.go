// SPDX-License-Identifier: MIT
// Package sparse - determinant kernels.
//
// Purpose:
//   - Recursive first-row cofactor expansion (the reference kernel).
//   - Optional concurrent fan-out of the first-row minors (errgroup), summed in
//     column order so the result is bit-identical to the sequential kernel.
//   - LU path through gonum for orders where O(n!) expansion is impractical.
//
// Complexity:
//   - Cofactor: O(n!) time, O(n^2) space per recursion level, depth n.
//   - LU:       O(n^3) time, O(n^2) space.

package sparse

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

const opDeterminant = "Determinant"

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: require a square matrix; otherwise warn and return ErrNonSquare.
//   - Stage 2: resolve the strategy (DetAuto picks cofactor up to
//     AutoCofactorMax, LU above).
//   - Stage 3: materialize to dense and run the selected kernel.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
func (m *CSR) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		m.warnNonSquare(opDeterminant)
		return 0, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	n := m.rows
	strategy := m.opts.detStrategy
	if strategy == DetAuto {
		strategy = DetCofactor
		if n > AutoCofactorMax {
			strategy = DetLU
		}
	}
	m.opts.logger.Debug("computing determinant",
		zap.Int("n", n),
		zap.Int("nnz", len(m.values)),
		zap.Stringer("strategy", strategy),
	)

	grid := m.ToDense()
	switch strategy {
	case DetLU:
		return detLU(grid), nil
	case DetParallel:
		det, err := detParallel(grid, m.opts.workers, m.opts.validateNaNInf)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", opDeterminant, err)
		}
		return det, nil
	default:
		return detCofactor(grid, m.opts.validateNaNInf), nil
	}
}

// cofactorSign is +1 for even columns and -1 for odd ones (row 0 expansion).
func cofactorSign(col int) float64 {
	if col%2 == 0 {
		return 1
	}

	return -1
}

// detCofactor expands a (square, n ≥ 1) along its first row.
//   - n == 1: the single cell.
//   - n == 2: a*d - b*c.
//   - n >= 3: Σ_c sign(c) · a[0][c] · det(minor(a, c)).
//
// With skipZero set, zero first-row entries and their minors are skipped.
// That is exact only for finite input: 0·Inf is NaN, so callers pass
// skipZero=false when NaN/Inf may be stored.
func detCofactor(a [][]float64, skipZero bool) float64 {
	n := len(a)
	switch n {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	var det float64
	for c := 0; c < n; c++ {
		if skipZero && a[0][c] == 0 {
			continue
		}
		det += cofactorSign(c) * a[0][c] * detCofactor(minorOf(a, c), skipZero)
	}

	return det
}

// minorOf returns the (n-1)×(n-1) matrix obtained by deleting row 0 and
// column col from a. The result shares one backing slice.
func minorOf(a [][]float64, col int) [][]float64 {
	n := len(a)
	backing := make([]float64, 0, (n-1)*(n-1))
	minor := make([][]float64, n-1)
	var i, j int
	for i = 1; i < n; i++ {
		start := len(backing)
		for j = 0; j < n; j++ {
			if j != col {
				backing = append(backing, a[i][j])
			}
		}
		minor[i-1] = backing[start:len(backing):len(backing)]
	}

	return minor
}

// detParallel evaluates the first-row minors concurrently (at most workers at
// a time) and sums the signed terms in column order.
func detParallel(a [][]float64, workers int, skipZero bool) (float64, error) {
	n := len(a)
	if n < 3 {
		return detCofactor(a, skipZero), nil
	}

	terms := make([]float64, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < n; c++ {
		if skipZero && a[0][c] == 0 {
			continue
		}
		g.Go(func() error {
			terms[c] = cofactorSign(c) * a[0][c] * detCofactor(minorOf(a, c), skipZero)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var det float64
	for c := 0; c < n; c++ {
		if skipZero && a[0][c] == 0 {
			continue
		}
		det += terms[c]
	}

	return det, nil
}

// detLU computes det(a) through gonum's LU factorization.
func detLU(a [][]float64) float64 {
	n := len(a)
	flat := make([]float64, 0, n*n)
	for _, row := range a {
		flat = append(flat, row...)
	}

	return mat.Det(mat.NewDense(n, n, flat))
}
