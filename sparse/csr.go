// SPDX-License-Identifier: MIT

// Package sparse - CSR storage & dense<->compressed conversion.
//
// Purpose:
//   - Hold a matrix as three parallel arrays: values (non-zeros in row-major
//     scan order), colIdx (0-based column per value) and rowPtr (rows+1 offsets;
//     row r occupies [rowPtr[r], rowPtr[r+1])).
//   - Guarantee zero-suppression: no stored value is exactly 0.0.
//   - Keep instances immutable: accessors return copies, operations return new
//     matrices that inherit the receiver's Options.
//
// Complexity quicksheet:
//   - NewFromDense: O(r*c); NewFromCompressed: O(r + nnz); ToDense: O(r*c + nnz);
//     Rows/Cols/IsSquare/NNZ: O(1); Values/ColumnIndex/RowPointer: O(nnz) copy.

package sparse

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxFromDense      = "NewFromDense"
	ctxFromCompressed = "NewFromCompressed"
	ctxElement        = "Element"
	ctxAt             = "At"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// csrErrorf wraps an error with a uniform CSR context and callsite indices.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a compressed-sparse-row matrix of float64 values.
type CSR struct {
	rows, cols int       // shape, both in [1, MaxDim]
	square     bool      // rows == cols, cached at construction
	values     []float64 // non-zero entries, row-major scan order
	colIdx     []int     // len == len(values); 0-based column of values[k]
	rowPtr     []int     // len == rows+1; rowPtr[0]==0, rowPtr[rows]==len(values)
	opts       Options   // per-instance policy inherited by derived matrices
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSR)(nil)

// NewFromDense compresses a rectangular grid into CSR form.
//
// Implementation:
//   - Stage 1: validate shape (non-empty, rectangular, <= MaxDim) and, under
//     the default numeric policy, reject NaN/±Inf.
//   - Stage 2: single row-major scan emitting (value, column) for every
//     non-zero cell; append the running count to rowPtr at each row boundary.
//
// Errors:
//   - ErrBadShape, ErrNaNInf (wrapped with "NewFromDense").
//
// Complexity:
//   - Time O(r*c), Space O(r + nnz). The grid is not retained.
func NewFromDense(grid [][]float64, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	if err := validateDense(grid, o.validateNaNInf); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromDense, err)
	}

	return compress(grid, o), nil
}

// NewFromCompressed builds a CSR from an existing (values, colIdx, rowPtr)
// triple plus explicit shape and square flag. The slices are copied.
//
// Every invariant is checked (see validateCompressed); any violation returns
// ErrMalformedCompressed. Columns inside a row must be strictly increasing.
//
// Complexity: Time O(rows + nnz), Space O(rows + nnz).
func NewFromCompressed(values []float64, colIdx, rowPtr []int, rows, cols int, square bool, opts ...Option) (*CSR, error) {
	if err := validateCompressed(values, colIdx, rowPtr, rows, cols, square); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromCompressed, err)
	}

	return newCSR(
		append([]float64(nil), values...),
		append([]int(nil), colIdx...),
		append([]int(nil), rowPtr...),
		rows, cols, gatherOptions(opts...),
	), nil
}

// newCSR is the trusted internal constructor: no validation, no copies.
// Callers guarantee a consistent triple and take no further ownership.
func newCSR(values []float64, colIdx, rowPtr []int, rows, cols int, o Options) *CSR {
	return &CSR{
		rows:   rows,
		cols:   cols,
		square: rows == cols,
		values: values,
		colIdx: colIdx,
		rowPtr: rowPtr,
		opts:   o,
	}
}

// compress performs the dense->CSR scan without validation.
// grid must be rectangular with at least one row.
func compress(grid [][]float64, o Options) *CSR {
	rows, cols := len(grid), len(grid[0])
	values := make([]float64, 0, rows)
	colIdx := make([]int, 0, rows)
	rowPtr := make([]int, 1, rows+1) // rowPtr[0] = 0

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v := grid[i][j]; v != 0 {
				values = append(values, v)
				colIdx = append(colIdx, j)
			}
		}
		rowPtr = append(rowPtr, len(values)) // close row i
	}

	return newCSR(values, colIdx, rowPtr, rows, cols, o)
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *CSR) Shape() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether Rows() == Cols(). Cached at construction.
func (m *CSR) IsSquare() bool { return m.square }

// NNZ returns the number of stored (non-zero) entries.
func (m *CSR) NNZ() int { return len(m.values) }

// Values returns a copy of the non-zero values in row-major scan order.
func (m *CSR) Values() []float64 { return append([]float64(nil), m.values...) }

// ColumnIndex returns a copy of the 0-based column index of each value.
func (m *CSR) ColumnIndex() []int { return append([]int(nil), m.colIdx...) }

// RowPointer returns a copy of the rows+1 row offsets.
func (m *CSR) RowPointer() []int { return append([]int(nil), m.rowPtr...) }

// ToDense materializes a fresh rows×cols grid: zero everywhere, then every
// stored value scattered to (r, colIdx[k]) for k in row r's slice.
// Complexity: Time O(r*c + nnz), Space O(r*c).
func (m *CSR) ToDense() [][]float64 {
	grid := make([][]float64, m.rows)
	backing := make([]float64, m.rows*m.cols) // one allocation for all rows
	var r, k int
	for r = 0; r < m.rows; r++ {
		grid[r] = backing[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			grid[r][m.colIdx[k]] = m.values[k]
		}
	}

	return grid
}

// Equal reports whether m and other have the same shape and identical
// stored entries. Options are not compared.
func (m *CSR) Equal(other *CSR) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.values) != len(other.values) {
		return false
	}
	for i := range m.rowPtr {
		if m.rowPtr[i] != other.rowPtr[i] {
			return false
		}
	}
	for k := range m.values {
		if m.values[k] != other.values[k] || m.colIdx[k] != other.colIdx[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one "[a, b, c]" line per dense row.
// Complexity: O(r*c).
func (m *CSR) String() string {
	var sb strings.Builder
	var r, c, k int
	for r = 0; r < m.rows; r++ {
		sb.WriteString(_fmtRowOpen)
		k = m.rowPtr[r]
		for c = 0; c < m.cols; c++ {
			v := 0.0
			if k < m.rowPtr[r+1] && m.colIdx[k] == c { // rows are column-sorted
				v = m.values[k]
				k++
			}
			fmt.Fprintf(&sb, "%g", v)
			if c < m.cols-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// derive builds a result matrix carrying the receiver's policy.
func (m *CSR) derive(values []float64, colIdx, rowPtr []int, rows, cols int) *CSR {
	return newCSR(values, colIdx, rowPtr, rows, cols, m.opts)
}
