// SPDX-License-Identifier: MIT

// Package linalg is the root of lin-alg-lib, a small linear-algebra toolkit
// built around a compressed-sparse-row (CSR) matrix.
//
// Layout:
//
//	sparse/               CSR type, dense/compressed conversion, trace,
//	                      element lookup, determinant, scale, multiply, add
//	csrio/                dense text reader, console printer, zstd snapshots
//	internal/config/      .env and environment settings, zap logger
//	internal/selfcheck/   built-in checks run by the demo
//	cmd/csrdemo/          reads a matrix from stdin and prints every operation
//	examples/             runnable scenarios
//
// Quick start:
//
//	m, err := sparse.NewFromDense([][]float64{
//		{5, 0, 0},
//		{0, 8, 0},
//		{3, 0, 6},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(m.Values())      // [5 8 3 6]
//	fmt.Println(m.ColumnIndex()) // [0 1 0 2]
//	fmt.Println(m.RowPointer())  // [0 1 2 4]
//	det, _ := m.Determinant()    // 240
//
// All errors are sentinels matched with errors.Is; see sparse/errors.go.
package linalg
