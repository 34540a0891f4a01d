// SPDX-License-Identifier: MIT

package csrio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// SnapshotVersion is the document version written by WriteSnapshot.
const SnapshotVersion = 1

// snapshot is the on-disk document before compression.
type snapshot struct {
	Version  int       `json:"version"`
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Values   []float64 `json:"values"`
	ColIndex []int     `json:"col_index"`
	RowPtr   []int     `json:"row_ptr"`
}

var encoder *zstd.Encoder = func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithSingleSegment(true),
	)
	if err != nil {
		panic(err)
	}
	return encoder
}()

var decoder *zstd.Decoder = func() *zstd.Decoder {
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(0),
	)
	if err != nil {
		panic(err)
	}
	return decoder
}()

// EncodeSnapshot returns the compressed snapshot of m.
func EncodeSnapshot(m *sparse.CSR) ([]byte, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(snapshot{
		Version:  SnapshotVersion,
		Rows:     m.Rows(),
		Cols:     m.Cols(),
		Values:   m.Values(),
		ColIndex: m.ColumnIndex(),
		RowPtr:   m.RowPointer(),
	})
	if err != nil {
		return nil, fmt.Errorf("EncodeSnapshot: marshal: %w", err)
	}

	return encoder.EncodeAll(raw, nil), nil
}

// DecodeSnapshot rebuilds a matrix from EncodeSnapshot output. The triple is
// validated by sparse.NewFromCompressed; opts become the matrix options.
func DecodeSnapshot(data []byte, opts ...sparse.Option) (*sparse.CSR, error) {
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("DecodeSnapshot: %w: %v", ErrSnapshotCorrupt, err)
	}
	var doc snapshot
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("DecodeSnapshot: %w: %v", ErrSnapshotCorrupt, err)
	}
	if doc.Version != SnapshotVersion {
		return nil, fmt.Errorf("DecodeSnapshot: version %d: %w", doc.Version, ErrSnapshotVersion)
	}

	return sparse.NewFromCompressed(
		doc.Values, doc.ColIndex, doc.RowPtr,
		doc.Rows, doc.Cols, doc.Rows == doc.Cols,
		opts...,
	)
}

// WriteSnapshot writes the compressed snapshot of m to w.
func WriteSnapshot(w io.Writer, m *sparse.CSR) error {
	data, err := EncodeSnapshot(m)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("WriteSnapshot: %w", err)
	}

	return nil
}

// ReadSnapshot reads all of r and decodes it with DecodeSnapshot.
func ReadSnapshot(r io.Reader, opts ...sparse.Option) (*sparse.CSR, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadSnapshot: %w", err)
	}

	return DecodeSnapshot(data, opts...)
}
