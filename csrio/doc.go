// SPDX-License-Identifier: MIT

// Package csrio moves sparse.CSR matrices in and out of a process.
//
// It covers three formats:
//
//   - Dense text: "N M" followed by N*M whitespace-separated reals in
//     row-major order (ReadDense).
//   - Console listings: banner-framed vectors and dense rows (PrintVector,
//     PrintMatrix and their titled variants).
//   - Snapshots: the compressed triple as versioned JSON, zstd-compressed
//     (WriteSnapshot, ReadSnapshot).
//
// Decoded data always re-enters the engine through its validating
// constructors, so a corrupt snapshot can never produce a malformed CSR.
package csrio
