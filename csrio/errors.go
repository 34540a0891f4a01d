// SPDX-License-Identifier: MIT

package csrio

import "errors"

var (
	// ErrSyntax is returned when a token of the dense text format is not a
	// valid number.
	ErrSyntax = errors.New("csrio: invalid token")

	// ErrShortInput is returned when the input ends before the header or all
	// N*M values were read.
	ErrShortInput = errors.New("csrio: unexpected end of input")

	// ErrSnapshotVersion is returned by ReadSnapshot for an unknown document
	// version.
	ErrSnapshotVersion = errors.New("csrio: unsupported snapshot version")

	// ErrSnapshotCorrupt is returned when a snapshot cannot be decompressed
	// or decoded.
	ErrSnapshotCorrupt = errors.New("csrio: corrupt snapshot")
)
