// SPDX-License-Identifier: MIT
// Package sparse provides arithmetic on CSR matrices: scalar multiplication,
// matrix multiplication and matrix addition. Every operation validates its
// operands fail-fast, never mutates them, and returns a fresh *CSR that
// inherits the receiver's Options. On error the result is always nil.

package sparse

import (
	"fmt"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opScale = "Scale"
	opMul   = "Mul"
	opAdd   = "Add"
)

// opErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns alpha·m with the same sparsity pattern, minus any entry whose
// product is exactly zero. In particular Scale(0) yields a matrix with no
// stored entries.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is non-finite under the numeric policy.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows + nnz).
func (m *CSR) Scale(alpha float64) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	if m.opts.validateNaNInf && isNonFinite(alpha) {
		return nil, opErrorf(opScale, fmt.Errorf("alpha=%g: %w", alpha, ErrNaNInf))
	}

	values := make([]float64, 0, len(m.values))
	colIdx := make([]int, 0, len(m.colIdx))
	rowPtr := make([]int, 1, m.rows+1)
	var r, k int
	for r = 0; r < m.rows; r++ {
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			if v := m.values[k] * alpha; v != 0 {
				values = append(values, v)
				colIdx = append(colIdx, m.colIdx[k])
			}
		}
		rowPtr = append(rowPtr, len(values))
	}

	return m.derive(values, colIdx, rowPtr, m.rows, m.cols), nil
}

// Mul returns the matrix product m × other.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows).
//   - Stage 2: materialize both operands to dense.
//   - Stage 3: i→j→k accumulation C[i][j] = Σ_k A[i][k]·B[k][j].
//   - Stage 4: re-compress C.
//
// Notes:
//   - Both operands are densified; there is no sparse-sparse kernel.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·n + n·c + r·c).
func (m *CSR) Mul(other *CSR) (*CSR, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opMul, err)
	}

	a, b := m.ToDense(), other.ToDense()
	rows, common, cols := m.rows, m.cols, other.cols
	out := make([][]float64, rows)
	backing := make([]float64, rows*cols)
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < rows; i++ {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < common; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return compress(out, m.opts), nil
}

// Add returns the element-wise sum m + other.
//
// Implementation (per row r):
//   - Stage 1: insert m's entries of row r into a column→value map.
//   - Stage 2: add (not overwrite) other's entries of row r into the same map.
//   - Stage 3: emit every non-zero entry sorted by column, then close the row
//     by appending the running count to rowPtr.
//
// Behavior highlights:
//   - Exact cancellations (a + b == 0) are dropped from the result.
//   - Never densifies: cost follows the stored entries only.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz(m) + nnz(other) + Σ_r s_r·log s_r) where s_r is the merged
//     row size; Space O(nnz(m) + nnz(other)).
func (m *CSR) Add(other *CSR) (*CSR, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	values := make([]float64, 0, len(m.values)+len(other.values))
	colIdx := make([]int, 0, len(m.values)+len(other.values))
	rowPtr := make([]int, 1, m.rows+1)

	rowSum := make(map[int]float64)
	cols := make([]int, 0)
	var r, k int
	for r = 0; r < m.rows; r++ {
		clear(rowSum)
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			rowSum[m.colIdx[k]] += m.values[k]
		}
		for k = other.rowPtr[r]; k < other.rowPtr[r+1]; k++ {
			rowSum[other.colIdx[k]] += other.values[k]
		}

		cols = cols[:0]
		for c, v := range rowSum {
			if v != 0 {
				cols = append(cols, c)
			}
		}
		slices.Sort(cols) // map order is random; emit column-sorted
		for _, c := range cols {
			values = append(values, rowSum[c])
			colIdx = append(colIdx, c)
		}
		rowPtr = append(rowPtr, len(values))
	}

	return m.derive(values, colIdx, rowPtr, m.rows, m.cols), nil
}
