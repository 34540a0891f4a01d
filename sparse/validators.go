// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and structure checks.
//  - Keep kernels minimal by delegating nil/shape/square/CSR-consistency guards here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap once more with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.
//  - Dense validation is O(r*c); compressed validation is O(rows + nnz).

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *CSR) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b *CSR) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if !m.square {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateDims rejects row/column counts outside [1, MaxDim].
func validateDims(tag string, rows, cols int) error {
	if rows < 1 || rows > MaxDim || cols < 1 || cols > MaxDim {
		return validatorErrorf(tag, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return nil
}

// validateDense checks that grid is non-empty, rectangular, within MaxDim,
// and (when validateNaNInf is set) free of NaN/±Inf.
// Complexity: O(r*c) when the numeric policy is on, O(r) otherwise.
func validateDense(grid [][]float64, validateNaNInf bool) error {
	const tag = "validateDense"
	if len(grid) == 0 {
		return validatorErrorf(tag, fmt.Errorf("no rows: %w", ErrBadShape))
	}
	cols := len(grid[0])
	if err := validateDims(tag, len(grid), cols); err != nil {
		return err
	}
	for i, row := range grid {
		if len(row) != cols {
			return validatorErrorf(tag, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		if !validateNaNInf {
			continue
		}
		for j, v := range row {
			if isNonFinite(v) {
				return validatorErrorf(tag, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// validateCompressed checks every structural invariant of a CSR triple:
//   - rows/cols within [1, MaxDim] and square == (rows == cols);
//   - len(colIdx) == len(values), len(rowPtr) == rows+1;
//   - rowPtr[0] == 0, rowPtr[rows] == len(values), rowPtr non-decreasing and
//     never past len(values);
//   - 0 <= colIdx[k] < cols, values[k] != 0;
//   - columns strictly increasing inside each row (no duplicates).
//
// Complexity: O(rows + nnz).
func validateCompressed(values []float64, colIdx, rowPtr []int, rows, cols int, square bool) error {
	const tag = "validateCompressed"
	if rows < 1 || rows > MaxDim || cols < 1 || cols > MaxDim {
		return validatorErrorf(tag, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrMalformedCompressed))
	}
	if square != (rows == cols) {
		return validatorErrorf(tag, fmt.Errorf("square=%t for %dx%d: %w", square, rows, cols, ErrMalformedCompressed))
	}
	if len(colIdx) != len(values) {
		return validatorErrorf(tag, fmt.Errorf("len(colIdx)=%d, len(values)=%d: %w", len(colIdx), len(values), ErrMalformedCompressed))
	}
	if len(rowPtr) != rows+1 {
		return validatorErrorf(tag, fmt.Errorf("len(rowPtr)=%d, want %d: %w", len(rowPtr), rows+1, ErrMalformedCompressed))
	}
	if rowPtr[0] != 0 || rowPtr[rows] != len(values) {
		return validatorErrorf(tag, fmt.Errorf("rowPtr endpoints [%d..%d], want [0..%d]: %w", rowPtr[0], rowPtr[rows], len(values), ErrMalformedCompressed))
	}
	var r, k int
	for r = 0; r < rows; r++ {
		if rowPtr[r+1] < rowPtr[r] {
			return validatorErrorf(tag, fmt.Errorf("rowPtr decreases at row %d: %w", r, ErrMalformedCompressed))
		}
		if rowPtr[r+1] > len(values) {
			return validatorErrorf(tag, fmt.Errorf("rowPtr[%d]=%d past %d values: %w", r+1, rowPtr[r+1], len(values), ErrMalformedCompressed))
		}
		for k = rowPtr[r]; k < rowPtr[r+1]; k++ {
			if colIdx[k] < 0 || colIdx[k] >= cols {
				return validatorErrorf(tag, fmt.Errorf("colIdx[%d]=%d outside [0,%d): %w", k, colIdx[k], cols, ErrMalformedCompressed))
			}
			if k > rowPtr[r] && colIdx[k] <= colIdx[k-1] {
				return validatorErrorf(tag, fmt.Errorf("row %d columns not strictly increasing at %d: %w", r, k, ErrMalformedCompressed))
			}
			if values[k] == 0 {
				return validatorErrorf(tag, fmt.Errorf("values[%d] is an explicit zero: %w", k, ErrMalformedCompressed))
			}
		}
	}

	return nil
}
