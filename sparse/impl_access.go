// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"go.uber.org/zap"
)

const opTrace = "Trace"

// Element returns the value at 1-based (row, col), or 0.0 when no entry is
// stored there.
//
// Implementation:
//   - Stage 1: bounds check 1 ≤ row ≤ Rows(), 1 ≤ col ≤ Cols().
//   - Stage 2: convert to 0-based and scan row's slice for a matching column.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange wrapped as "CSR.Element(row,col): ...".
//
// Complexity:
//   - Time O(nnz(row)), Space O(1).
func (m *CSR) Element(row, col int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, csrErrorf(ctxElement, row, col, err)
	}
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		return 0, csrErrorf(ctxElement, row, col, ErrOutOfRange)
	}

	return m.lookup(row-1, col-1), nil
}

// At is the 0-based twin of Element: valid indices are 0 ≤ i < Rows(),
// 0 ≤ j < Cols().
func (m *CSR) At(i, j int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, csrErrorf(ctxAt, i, j, err)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, csrErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.lookup(i, j), nil
}

// lookup scans row i's slice for column j. Indices must be in range.
func (m *CSR) lookup(i, j int) float64 {
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colIdx[k] == j {
			return m.values[k]
		}
	}

	return 0
}

// Trace returns the sum of diagonal entries (j, j) for j in [0, Rows()).
//
// Implementation:
//   - Stage 1: require a square matrix; otherwise warn through the instance
//     logger and return ErrNonSquare.
//   - Stage 2: per row, scan its slice once and stop at the first entry whose
//     column equals the row index (a row never repeats a column).
//
// Complexity:
//   - Time O(rows + nnz), Space O(1).
func (m *CSR) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		m.warnNonSquare(opTrace)
		return 0, fmt.Errorf("%s: %w", opTrace, err)
	}

	var trace float64
	var j, k int
	for j = 0; j < m.rows; j++ {
		for k = m.rowPtr[j]; k < m.rowPtr[j+1]; k++ {
			if m.colIdx[k] == j {
				trace += m.values[k]
				break
			}
		}
	}

	return trace, nil
}

// warnNonSquare emits the non-square diagnostic for op.
func (m *CSR) warnNonSquare(op string) {
	if m == nil {
		return
	}
	m.opts.logger.Warn("matrix is not square",
		zap.String("op", op),
		zap.Int("rows", m.rows),
		zap.Int("cols", m.cols),
	)
}
