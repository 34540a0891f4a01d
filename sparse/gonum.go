// SPDX-License-Identifier: MIT
// Package sparse - gonum interop.
//
// Purpose:
//   - Expose a CSR as a read-only gonum mat.Matrix without copying, so callers
//     can hand it to gonum routines (mat.Det, mat.Dense.Mul, mat.Formatted...).
//   - Advertise sparsity through mat.NonZeroDoer / mat.RowNonZeroDoer.
//   - Import any mat.Matrix back into CSR form.
//
// Notes:
//   - gonum's contract is to panic on out-of-range At; the view follows it.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromGonum = "FromGonum"

// gonumView adapts *CSR to gonum's mat.Matrix.
type gonumView struct{ m *CSR }

var (
	_ mat.Matrix         = gonumView{}
	_ mat.NonZeroDoer    = gonumView{}
	_ mat.RowNonZeroDoer = gonumView{}
)

// Gonum returns a zero-copy mat.Matrix view of m.
func (m *CSR) Gonum() mat.Matrix { return gonumView{m: m} }

// Dims returns the shape of the viewed matrix.
func (v gonumView) Dims() (r, c int) { return v.m.rows, v.m.cols }

// At returns the element at 0-based (i, j). Panics with mat.ErrRowAccess or
// mat.ErrColAccess when out of range.
func (v gonumView) At(i, j int) float64 {
	if i < 0 || i >= v.m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.m.cols {
		panic(mat.ErrColAccess)
	}

	return v.m.lookup(i, j)
}

// T returns the implicit transpose.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DoNonZero calls fn for every stored entry in row-major order.
func (v gonumView) DoNonZero(fn func(i, j int, v float64)) {
	m := v.m
	for r := 0; r < m.rows; r++ {
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			fn(r, m.colIdx[k], m.values[k])
		}
	}
}

// DoRowNonZero calls fn for every stored entry of row i.
func (v gonumView) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	m := v.m
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		fn(i, m.colIdx[k], m.values[k])
	}
}

// FromGonum compresses any gonum matrix into CSR form. The same shape and
// numeric-policy checks as NewFromDense apply.
func FromGonum(src mat.Matrix, opts ...Option) (*CSR, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	if v, ok := src.(gonumView); ok {
		// Round trip of our own view: rebuild from the compressed arrays.
		o := gatherOptions(opts...)
		return newCSR(v.m.Values(), v.m.ColumnIndex(), v.m.RowPointer(), v.m.rows, v.m.cols, o), nil
	}

	r, c := src.Dims()
	grid := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		grid[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			grid[i][j] = src.At(i, j)
		}
	}
	m, err := NewFromDense(grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}

	return m, nil
}
