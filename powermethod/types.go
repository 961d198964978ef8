// SPDX-License-Identifier: MIT
// Package powermethod: states, options and sentinel errors.

package powermethod

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("powermethod: nil matrix")

	// ErrNonSquare indicates the input matrix is not square.
	ErrNonSquare = errors.New("powermethod: matrix is not square")

	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("powermethod: tolerance must be finite and > 0")

	// ErrBadMaxIterations indicates a non-positive iteration budget.
	ErrBadMaxIterations = errors.New("powermethod: max iterations must be >= 1")

	// ErrBadInitialVector indicates a supplied start vector with the wrong
	// length, a non-finite entry, or numerically zero norm.
	ErrBadInitialVector = errors.New("powermethod: invalid initial vector")
)

// ErrorNotComputed marks a relative error that could not be computed
// (reference eigenvalue exactly zero, or a non-finite estimate). It is a
// flag value, never a magnitude; consumers must test for it before comparing.
const ErrorNotComputed = -1.0

// State is the explicit life-cycle of one solver run. Terminal outcomes are
// reported as states, never thrown: running out of iterations or hitting
// numerical degeneracy are expected, reportable results of a precision study.
type State int

const (
	// Initializing: the iterator is constructed but has not stepped yet.
	Initializing State = iota

	// Iterating: at least one step taken, no stop condition met.
	Iterating

	// Converged: the relative error dropped below the requested tolerance —
	// or below the precision's accuracy floor, in which case
	// ThresholdReached reports true alongside.
	Converged

	// MaxIterationsReached: the step budget ran out first.
	MaxIterationsReached

	// Diverged: the iterate collapsed to a numerically zero vector
	// (division-by-zero guard in the normalization).
	Diverged
)

// String returns the canonical state name.
func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Iterating:
		return "Iterating"
	case Converged:
		return "Converged"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	case Diverged:
		return "Diverged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == Converged || s == MaxIterationsReached || s == Diverged
}

// Defaults for Options (single source of truth).
const (
	// DefaultTolerance is the requested relative-error target.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations bounds every run; there is no other timeout.
	DefaultMaxIterations = 500

	// DefaultSeed fixes the initial-vector stream when none is supplied.
	DefaultSeed = 42
)

// Options configures one solver run.
//
// Fields:
//   - Tolerance     — relative-error target ε (> 0, finite).
//   - MaxIterations — hard step budget (>= 1).
//   - InitialVector — optional start vector of matrix dimension; when nil a
//     random unit vector is drawn from Seed.
//   - Seed          — pseudo-random stream for the default start vector.
//   - Floor         — accuracy-floor override: 0 uses the precision mode's
//     documented floor, a negative value disables floor stopping entirely
//     (used by the cascade, which manages its own stage thresholds).
type Options struct {
	Tolerance     float64
	MaxIterations int
	InitialVector []float64
	Seed          int64
	Floor         float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Seed:          DefaultSeed,
	}
}

// Step is the per-iteration observation returned by Iterator.Next.
// Immutable once returned; indices are contiguous from 0.
type Step struct {
	Iteration     int     // 0-based step index
	Eigenvalue    float64 // Rayleigh-quotient estimate after this step
	RelativeError float64 // vs. the true eigenvalue; ErrorNotComputed when undefined
	VectorNorm    float64 // ‖A·x‖ before normalization
	ResidualNorm  float64 // ‖A·x − λ·x‖ on the normalized vector
}

// Result is the complete outcome of a driven run: the terminal state, the
// full step history (possibly short on divergence), and final estimates.
type Result struct {
	State            State
	Steps            []Step
	ThresholdReached bool
	Eigenvalue       float64
	RelativeError    float64
	Iterations       int
}
