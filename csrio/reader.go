// SPDX-License-Identifier: MIT

package csrio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// tokenReader yields whitespace-separated tokens from r.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token returned
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token or ErrShortInput at EOF.
func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("ReadDense: %s: %w", what, err)
		}

		return "", fmt.Errorf("ReadDense: %s: %w", what, ErrShortInput)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenReader) dim(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ReadDense: %s %q at token %d: %w", what, tok, t.pos, ErrSyntax)
	}
	if n < 1 || n > sparse.MaxDim {
		return 0, fmt.Errorf("ReadDense: %s=%d: %w", what, n, sparse.ErrBadShape)
	}

	return n, nil
}

// ReadDense parses "N M" followed by N*M reals in row-major order and returns
// the grid. Anything after the last value is ignored.
//
// Errors: ErrShortInput, ErrSyntax, sparse.ErrBadShape (N or M outside
// [1, sparse.MaxDim]).
func ReadDense(r io.Reader) ([][]float64, error) {
	tr := newTokenReader(r)

	rows, err := tr.dim("rows")
	if err != nil {
		return nil, err
	}
	cols, err := tr.dim("cols")
	if err != nil {
		return nil, err
	}

	// Rows are allocated as they are read; the header alone never sizes the grid.
	grid := make([][]float64, 0, min(rows, 1024))
	var i, j int
	for i = 0; i < rows; i++ {
		row := make([]float64, cols)
		for j = 0; j < cols; j++ {
			tok, err := tr.next(fmt.Sprintf("value (%d,%d)", i+1, j+1))
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadDense: value (%d,%d) %q: %w", i+1, j+1, tok, ErrSyntax)
			}
			row[j] = v
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// ReadMatrix is ReadDense followed by sparse.NewFromDense.
func ReadMatrix(r io.Reader, opts ...sparse.Option) (*sparse.CSR, error) {
	grid, err := ReadDense(r)
	if err != nil {
		return nil, err
	}

	return sparse.NewFromDense(grid, opts...)
}
