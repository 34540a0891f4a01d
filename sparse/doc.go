// Package sparse offers a compressed-sparse-row (CSR) matrix and the small set
// of linear-algebra operations built on it.
//
// The sparse package provides:
//
//   - CSR: immutable row-compressed storage (values, column index, row
//     pointer) with zero-suppression; NewFromDense / NewFromCompressed / ToDense.
//   - Element (1-based) and At (0-based) lookups with bounds checking.
//   - Trace and Determinant (first-row cofactor expansion, optional concurrent
//     fan-out, or gonum LU for large orders).
//   - Scale, Mul (dense kernel, re-compressed) and Add (per-row sparse merge).
//   - A zero-copy gonum mat.Matrix view and FromGonum import.
//
// Every failure is reported through the sentinels in errors.go; no operation
// returns a placeholder matrix alongside an error.
//
//	m, _ := sparse.NewFromDense([][]float64{{5, 0, 0}, {0, 8, 0}, {3, 0, 6}})
//	tr, _ := m.Trace() // 19
package sparse
