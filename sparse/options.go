// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for CSR construction and the
// per-instance numeric/diagnostic policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Policy travels with the matrix: results of Scale/Mul/Add inherit the
//     receiver's Options, so a logger or strategy set once applies downstream.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MaxDim is the largest supported row or column count (16-bit index range).
	MaxDim = 1<<16 - 1

	// DefaultValidateNaNInf toggles strict finite-value validation on dense
	// ingestion and on Scale factors.
	DefaultValidateNaNInf = true

	// DefaultDetStrategy selects cofactor expansion for small matrices and LU above.
	DefaultDetStrategy = DetAuto

	// AutoCofactorMax is the largest order DetAuto still expands by cofactors.
	// 8! = 40320 leaf products; beyond that LU is used.
	AutoCofactorMax = 8

	// DefaultWorkers bounds concurrent minor evaluations under DetParallel.
	DefaultWorkers = 4
)

// DetStrategy selects the determinant kernel.
type DetStrategy int

const (
	// DetAuto expands by cofactors up to AutoCofactorMax, then switches to LU.
	DetAuto DetStrategy = iota
	// DetCofactor always uses recursive first-row cofactor expansion.
	DetCofactor
	// DetParallel expands the first row concurrently; each minor is evaluated
	// by sequential cofactor expansion. Sums in column order.
	DetParallel
	// DetLU delegates to gonum's LU-based mat.Det.
	DetLU
)

var detStrategyNames = map[DetStrategy]string{
	DetAuto:     "auto",
	DetCofactor: "cofactor",
	DetParallel: "parallel",
	DetLU:       "lu",
}

// String returns the lowercase strategy name used by configuration.
func (s DetStrategy) String() string {
	if name, ok := detStrategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("DetStrategy(%d)", int(s))
}

// ParseDetStrategy maps a configuration name back to a DetStrategy.
func ParseDetStrategy(name string) (DetStrategy, error) {
	for s, n := range detStrategyNames {
		if n == name {
			return s, nil
		}
	}

	return DetAuto, fmt.Errorf("sparse: unknown determinant strategy %q", name)
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger       = "sparse: WithLogger: logger must be non-nil"
	panicUnknownStrategy = "sparse: WithDeterminantStrategy: unknown strategy"
	panicWorkersInvalid  = "sparse: WithWorkers: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger         *zap.Logger // diagnostics sink; zap.NewNop() by default
	validateNaNInf bool        // DefaultValidateNaNInf
	detStrategy    DetStrategy // DefaultDetStrategy
	workers        int         // DefaultWorkers
}

// WithLogger routes engine diagnostics (non-square warnings, strategy
// selection) to logger. Panics on nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf pass through dense ingestion and Scale.
// Use with care: NaN never compares equal to zero, so it is always stored.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDeterminantStrategy selects the determinant kernel.
// Panics on a value outside the declared DetStrategy constants.
func WithDeterminantStrategy(s DetStrategy) Option {
	if _, ok := detStrategyNames[s]; !ok {
		panic(panicUnknownStrategy)
	}

	return func(o *Options) { o.detStrategy = s }
}

// WithWorkers bounds the number of concurrently evaluated minors under
// DetParallel. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// defaultOptions returns the zero-config policy.
func defaultOptions() Options {
	return Options{
		logger:         zap.NewNop(),
		validateNaNInf: DefaultValidateNaNInf,
		detStrategy:    DefaultDetStrategy,
		workers:        DefaultWorkers,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
