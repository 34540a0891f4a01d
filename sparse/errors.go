// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Every operation returns these sentinels (possibly wrapped with an
// operation tag) and tests MUST match them via errors.Is. No operation panics
// on user-triggered error conditions; panics are reserved for Option
// constructors receiving nonsensical arguments.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping across logs.
// Detection sites wrap with fmt.Errorf("<tag>: %w", ErrX); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/NaN -> dimension mismatch -> square-ness -> index range.

var (
	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when a dense source is empty, jagged, or exceeds
	// MaxDim rows or columns.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add with
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that Trace or Determinant was requested on a
	// matrix whose row and column counts differ.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Element/At MUST return this instead of reading past the row slice.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrMalformedCompressed signals an inconsistent (values, colIdx, rowPtr)
	// triple passed to NewFromCompressed.
	ErrMalformedCompressed = errors.New("sparse: malformed compressed input")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (dense ingestion, Scale factor).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
