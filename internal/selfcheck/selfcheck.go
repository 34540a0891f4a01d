// SPDX-License-Identifier: MIT

// Package selfcheck runs a fixed set of engine checks at startup and reports
// how many passed.
package selfcheck

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// SuiteName labels the report.
const SuiteName = "MatrixTests"

// tolerance for floating-point comparisons.
const tolerance = 1e-9

// Check is a named engine check. Run returns nil on success.
type Check struct {
	Name string
	Run  func(opts ...sparse.Option) error
}

// Result is the outcome of a single Check.
type Result struct {
	Name string
	Err  error
}

// Report collects the results of one suite run.
type Report struct {
	Suite   string
	Results []Result
}

// Total returns the number of checks run.
func (r *Report) Total() int { return len(r.Results) }

// Failures returns the number of failed checks.
func (r *Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// Passed returns the number of successful checks.
func (r *Report) Passed() int { return r.Total() - r.Failures() }

// OK reports whether every check passed.
func (r *Report) OK() bool { return r.Failures() == 0 }

// WriteTo prints the summary block and one line per failure.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	const rule = "----------------------------------------"

	var sb strings.Builder
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Suite: %s\n", r.Suite)
	fmt.Fprintf(&sb, "Total tests: %d\n", r.Total())
	fmt.Fprintf(&sb, "Successful: %d\n", r.Passed())
	if f := r.Failures(); f > 0 {
		fmt.Fprintf(&sb, "Failed: %d\n", f)
		for _, res := range r.Results {
			if res.Err != nil {
				fmt.Fprintf(&sb, "  %s: %v\n", res.Name, res.Err)
			}
		}
	} else {
		sb.WriteString("All tests have been successfully passed!\n")
	}
	sb.WriteString(rule + "\n")

	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}

// Run executes checks in order with opts applied to every matrix they build.
// A panicking check is recorded as a failure.
func Run(checks []Check, opts ...sparse.Option) *Report {
	rep := &Report{Suite: SuiteName, Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		rep.Results = append(rep.Results, Result{Name: c.Name, Err: runOne(c, opts)})
	}

	return rep
}

func runOne(c Check, opts []sparse.Option) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return c.Run(opts...)
}

// RunDefault runs Default() with opts.
func RunDefault(opts ...sparse.Option) *Report { return Run(Default(), opts...) }

// Default returns the built-in checks.
func Default() []Check {
	return []Check{
		{"get_element", checkElement},
		{"get_trace", checkTrace},
		{"get_determinant", checkDeterminant},
		{"scalar_multiply", checkScale},
		{"matrix_multiply", checkMul},
		{"matrix_add", checkAdd},
		{"csr_to_dense", checkToDense},
		{"constructor_and_csr", checkConstructor},
	}
}

var (
	lowerTriangular = [][]float64{{5, 0, 0}, {0, 8, 0}, {3, 0, 6}}
	ascending       = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	descending      = [][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
)

func near(name string, got, want float64) error {
	if math.Abs(got-want) > tolerance {
		return fmt.Errorf("%s = %g, want %g", name, got, want)
	}

	return nil
}

// expectDense compares every element of m, through the 1-based accessor,
// against want.
func expectDense(m *sparse.CSR, want [][]float64) error {
	for i := range want {
		for j := range want[i] {
			got, err := m.Element(i+1, j+1)
			if err != nil {
				return err
			}
			if err = near(fmt.Sprintf("element(%d,%d)", i+1, j+1), got, want[i][j]); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkConstructor(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense(lowerTriangular, opts...)
	if err != nil {
		return err
	}
	wantValues := []float64{5, 8, 3, 6}
	wantCols := []int{0, 1, 0, 2}
	wantPtr := []int{0, 1, 2, 4}

	values, cols, ptr := m.Values(), m.ColumnIndex(), m.RowPointer()
	if len(values) != len(wantValues) || len(cols) != len(wantCols) {
		return fmt.Errorf("nnz = %d, want %d", len(values), len(wantValues))
	}
	for k := range wantValues {
		if err = near(fmt.Sprintf("values[%d]", k), values[k], wantValues[k]); err != nil {
			return err
		}
		if cols[k] != wantCols[k] {
			return fmt.Errorf("colIdx[%d] = %d, want %d", k, cols[k], wantCols[k])
		}
	}
	if len(ptr) != len(wantPtr) {
		return fmt.Errorf("len(rowPtr) = %d, want %d", len(ptr), len(wantPtr))
	}
	for i := range wantPtr {
		if ptr[i] != wantPtr[i] {
			return fmt.Errorf("rowPtr[%d] = %d, want %d", i, ptr[i], wantPtr[i])
		}
	}

	return nil
}

func checkTrace(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense(lowerTriangular, opts...)
	if err != nil {
		return err
	}
	tr, err := m.Trace()
	if err != nil {
		return err
	}

	return near("trace", tr, 19)
}

func checkElement(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense(lowerTriangular, opts...)
	if err != nil {
		return err
	}
	for _, tc := range []struct {
		i, j int
		want float64
	}{{1, 1, 5}, {2, 2, 8}, {3, 3, 6}, {1, 2, 0}} {
		got, err := m.Element(tc.i, tc.j)
		if err != nil {
			return err
		}
		if err = near(fmt.Sprintf("element(%d,%d)", tc.i, tc.j), got, tc.want); err != nil {
			return err
		}
	}

	return nil
}

func checkDeterminant(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense([][]float64{{2, 3, 1}, {4, 1, 3}, {3, 2, 4}}, opts...)
	if err != nil {
		return err
	}
	det, err := m.Determinant()
	if err != nil {
		return err
	}

	return near("determinant", det, -20)
}

func checkScale(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense([][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, opts...)
	if err != nil {
		return err
	}
	if m, err = m.Scale(2); err != nil {
		return err
	}

	return expectDense(m, [][]float64{{2, 0, 0}, {0, 4, 0}, {0, 0, 6}})
}

func checkMul(opts ...sparse.Option) error {
	a, err := sparse.NewFromDense(ascending, opts...)
	if err != nil {
		return err
	}
	b, err := sparse.NewFromDense(descending, opts...)
	if err != nil {
		return err
	}
	p, err := a.Mul(b)
	if err != nil {
		return err
	}

	return expectDense(p, [][]float64{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}})
}

func checkAdd(opts ...sparse.Option) error {
	a, err := sparse.NewFromDense(ascending, opts...)
	if err != nil {
		return err
	}
	b, err := sparse.NewFromDense(descending, opts...)
	if err != nil {
		return err
	}
	s, err := a.Add(b)
	if err != nil {
		return err
	}

	return expectDense(s, [][]float64{{10, 10, 10}, {10, 10, 10}, {10, 10, 10}})
}

func checkToDense(opts ...sparse.Option) error {
	m, err := sparse.NewFromDense(lowerTriangular, opts...)
	if err != nil {
		return err
	}
	got := m.ToDense()
	for i := range lowerTriangular {
		for j := range lowerTriangular[i] {
			if err = near(fmt.Sprintf("dense[%d][%d]", i, j), got[i][j], lowerTriangular[i][j]); err != nil {
				return err
			}
		}
	}

	return nil
}
