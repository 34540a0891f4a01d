// SPDX-License-Identifier: MIT

// Command csrdemo reads a dense matrix, stores it in CSR form and prints the
// result of every engine operation on it.
//
// Usage:
//
//	csrdemo [-selfcheck] [-det auto|cofactor|parallel|lu] [-workers n]
//	        [-log-level debug|info|warn|error] [-env file]
//	        [-save snapshot.zst | -load snapshot.zst]
//
// Input on stdin is "N M" followed by N*M values in row-major order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Mezgou/lin-alg-lib/csrio"
	"github.com/Mezgou/lin-alg-lib/internal/config"
	"github.com/Mezgou/lin-alg-lib/internal/selfcheck"
	"github.com/Mezgou/lin-alg-lib/sparse"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitSelfCheck = 2
)

// companion is the fixed right-hand operand for the add and multiply tasks.
var companion = [][]float64{
	{1, 0},
	{0, 1},
	{4, 5},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	envFile   string
	logLevel  string
	det       string
	workers   int
	selfCheck bool
	save      string
	load      string
}

func parseFlags(args []string, stderr io.Writer) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("csrdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.envFile, "env", "", "load settings from this .env file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.det, "det", "", "determinant strategy: auto, cofactor, parallel or lu")
	fs.IntVar(&f.workers, "workers", 0, "worker limit for the parallel determinant")
	fs.BoolVar(&f.selfCheck, "selfcheck", false, "run the built-in checks first")
	fs.StringVar(&f.save, "save", "", "write a snapshot of the input matrix to this file")
	fs.StringVar(&f.load, "load", "", "read the matrix from this snapshot instead of stdin")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, set, nil
}

// resolveConfig loads the environment and applies explicitly set flags.
func resolveConfig(f *flags, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, err
	}
	if set["log-level"] {
		if cfg.LogLevel, err = config.ParseLogLevel(f.logLevel); err != nil {
			return nil, err
		}
	}
	if set["det"] {
		if cfg.DetStrategy, err = sparse.ParseDetStrategy(f.det); err != nil {
			return nil, fmt.Errorf("%w: -det %q", config.ErrInvalidConfig, f.det)
		}
	}
	if set["workers"] {
		if f.workers < 1 {
			return nil, fmt.Errorf("%w: -workers %d", config.ErrInvalidConfig, f.workers)
		}
		cfg.Workers = f.workers
	}
	if set["selfcheck"] {
		cfg.SelfCheck = f.selfCheck
	}
	if f.save != "" && f.load != "" {
		return nil, fmt.Errorf("%w: -save and -load are exclusive", config.ErrInvalidConfig)
	}

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}
	cfg, err := resolveConfig(f, set)
	if err != nil {
		fmt.Fprintln(stderr, "csrdemo:", err)
		return exitFailure
	}

	logger := config.NewLogger(stderr, cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck
	opts := cfg.MatrixOptions(logger)

	code := exitOK
	if cfg.SelfCheck {
		fmt.Fprintln(stdout, "Run tests...")
		rep := selfcheck.RunDefault(opts...)
		if _, err = rep.WriteTo(stdout); err != nil {
			logger.Error("write self-check report", zap.Error(err))
		}
		if !rep.OK() {
			logger.Warn("self-check failed", zap.Int("failures", rep.Failures()))
			code = exitSelfCheck
		}
	}

	m, err := loadMatrix(f, stdin, stdout, opts)
	if err != nil {
		logger.Error("reading matrix", zap.Error(err))
		fmt.Fprintln(stderr, "csrdemo:", err)
		return exitFailure
	}
	logger.Info("matrix loaded",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("nnz", m.NNZ()),
	)

	if f.save != "" {
		if err = saveSnapshot(f.save, m); err != nil {
			fmt.Fprintln(stderr, "csrdemo:", err)
			return exitFailure
		}
		logger.Info("snapshot written", zap.String("path", f.save))
	}

	if err = report(stdout, m, opts); err != nil {
		fmt.Fprintln(stderr, "csrdemo:", err)
		return exitFailure
	}

	return code
}

func loadMatrix(f *flags, stdin io.Reader, stdout io.Writer, opts []sparse.Option) (*sparse.CSR, error) {
	if f.load != "" {
		file, err := os.Open(f.load)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return csrio.ReadSnapshot(file, opts...)
	}

	fmt.Fprint(stdout, "Enter the dimensions of the matrix (N and M) followed by ")
	fmt.Fprintln(stdout, "the elements of the matrix (N rows of M elements):")

	return csrio.ReadMatrix(stdin, opts...)
}

func saveSnapshot(path string, m *sparse.CSR) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = csrio.WriteSnapshot(file, m); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// report prints every task for m. Engine errors are printed in place of the
// result; only write failures are returned.
func report(w io.Writer, m *sparse.CSR, opts []sparse.Option) error {
	steps := []func() error{
		func() error { return csrio.PrintVector(w, m.Values()) },
		func() error { return csrio.PrintVector(w, m.ColumnIndex()) },
		func() error { return csrio.PrintVector(w, m.RowPointer()) },
		func() error { return csrio.PrintMatrix(w, m) },
		func() error {
			_, err := fmt.Fprintln(w, "square:", m.IsSquare())
			return err
		},
		func() error {
			tr, err := m.Trace()
			return printResult(w, "trace:", tr, err)
		},
		func() error {
			e, err := m.Element(2, 2)
			return printResult(w, "element(2,2):", e, err)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	other, err := sparse.NewFromDense(companion, opts...)
	if err != nil {
		return err
	}
	sum, err := m.Add(other)
	if err = printMatrixResult(w, sum, err); err != nil {
		return err
	}
	product, err := m.Mul(other)
	if err = printMatrixResult(w, product, err); err != nil {
		return err
	}

	det, err := m.Determinant()
	switch {
	case err != nil:
		_, err = fmt.Fprintln(w, "error:", err)
	case det != 0:
		_, err = fmt.Fprintln(w, "The matrix is reversible, the determinant:", formatFloat(det))
	default:
		_, err = fmt.Fprintln(w, "The matrix is irreversible, the determinant is zero.")
	}

	return err
}

func printResult(w io.Writer, label string, v float64, opErr error) error {
	if opErr != nil {
		_, err := fmt.Fprintln(w, "error:", opErr)
		return err
	}
	_, err := fmt.Fprintln(w, label, formatFloat(v))

	return err
}

func printMatrixResult(w io.Writer, m *sparse.CSR, opErr error) error {
	if opErr != nil {
		_, err := fmt.Fprintln(w, "error:", opErr)
		return err
	}

	return csrio.PrintMatrix(w, m)
}
