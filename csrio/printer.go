// SPDX-License-Identifier: MIT

package csrio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

const (
	vectorBanner = "PrintVector================="
	matrixBanner = "PrintMatrix================="
	closingRule  = "============================"
	titleTail    = "--"
)

// Number is the element type accepted by PrintVector.
type Number interface {
	~int | ~float64
}

func formatNumber[T Number](v T) string {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		// named types built on int or float64
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
}

func writeVector[T Number](bw *bufio.Writer, v []T) {
	bw.WriteString("[ ")
	for _, x := range v {
		bw.WriteString(formatNumber(x))
		bw.WriteByte(' ')
	}
	bw.WriteString("]\n")
}

func writeRows(bw *bufio.Writer, m *sparse.CSR) {
	for _, row := range m.ToDense() {
		for _, x := range row {
			bw.WriteString(formatNumber(x))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
}

// PrintVector writes v between the vector banner and the closing rule:
//
//	PrintVector=================
//	[ 5 8 3 6 ]
//	============================
func PrintVector[T Number](w io.Writer, v []T) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(vectorBanner + "\n")
	writeVector(bw, v)
	bw.WriteString(closingRule + "\n")

	return bw.Flush()
}

// PrintMatrix writes the dense rows of m, one per line, each value followed
// by a single space.
func PrintMatrix(w io.Writer, m *sparse.CSR) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(matrixBanner + "\n")
	writeRows(bw, m)
	bw.WriteString(closingRule + "\n")

	return bw.Flush()
}

// titleRule is "--" followed by one dash per byte of title.
func titleRule(title string) string {
	return titleTail + strings.Repeat("-", len(title))
}

// PrintTitledVector frames v with "<title>--" and a dash rule as long as the
// header.
func PrintTitledVector[T Number](w io.Writer, title string, v []T) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(title + titleTail + "\n")
	writeVector(bw, v)
	bw.WriteString(titleRule(title) + "\n")

	return bw.Flush()
}

// PrintTitledMatrix is PrintMatrix with a title header.
func PrintTitledMatrix(w io.Writer, title string, m *sparse.CSR) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(title + titleTail + "\n")
	writeRows(bw, m)
	bw.WriteString(titleRule(title) + "\n")

	return bw.Flush()
}
