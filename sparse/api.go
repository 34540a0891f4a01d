// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the *CSR methods.
//   - Avoid any logic duplication: each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the methods.
//   - Binary facades inherit Options from the left operand, as the methods do.

package sparse

// ---------- Constructors (O(n) / O(r) allocation) ----------

// Identity returns the n×n identity in CSR form (n stored ones).
// Errors: ErrBadShape when n is outside [1, MaxDim].
func Identity(n int, opts ...Option) (*CSR, error) {
	if err := validateDims("Identity", n, n); err != nil {
		return nil, err
	}
	values := make([]float64, n)
	colIdx := make([]int, n)
	rowPtr := make([]int, n+1)
	for i := 0; i < n; i++ {
		values[i] = 1
		colIdx[i] = i
		rowPtr[i+1] = i + 1
	}

	return newCSR(values, colIdx, rowPtr, n, n, gatherOptions(opts...)), nil
}

// Zeros returns a rows×cols matrix with no stored entries.
// Errors: ErrBadShape when a dimension is outside [1, MaxDim].
func Zeros(rows, cols int, opts ...Option) (*CSR, error) {
	if err := validateDims("Zeros", rows, cols); err != nil {
		return nil, err
	}

	return newCSR(nil, nil, make([]int, rows+1), rows, cols, gatherOptions(opts...)), nil
}

// ---------- Arithmetic facades ----------

// Sum is an alias for a.Add(b). Complexity: O(nnz(a) + nnz(b)).
func Sum(a, b *CSR) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Product is an alias for a.Mul(b). Complexity: O(r·n·c).
func Product(a, b *CSR) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return a.Mul(b)
}

// ScaleBy is an alias for m.Scale(alpha). Complexity: O(rows + nnz).
func ScaleBy(m *CSR, alpha float64) (*CSR, error) { return m.Scale(alpha) }

// Trace is an alias for m.Trace(). Complexity: O(rows + nnz).
func Trace(m *CSR) (float64, error) { return m.Trace() }

// Det is an alias for m.Determinant().
func Det(m *CSR) (float64, error) { return m.Determinant() }
