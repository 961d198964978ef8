// SPDX-License-Identifier: MIT

package powermethod

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/precisionlens/matrix"
	"github.com/katalvlaran/precisionlens/precision"
)

// divergenceEps is the norm threshold under which the iterate is treated as
// numerically zero (normalization would divide by ~0).
const divergenceEps = 1e-10

// Iterator runs the power method one step at a time, so an instrumentation
// layer can clock each step individually. All vector-producing operations
// are quantized to the active precision mode; scalar reductions (norms,
// Rayleigh quotients) stay in working precision, mirroring how narrow-width
// hardware accumulates into wider registers.
type Iterator struct {
	a       *matrix.Dense // input matrix quantized to mode, fixed per run
	trueEig float64
	mode    precision.Mode
	opts    Options

	n                int
	x                []float64 // current unit vector, quantized
	iter             int
	state            State
	thresholdReached bool
	floor            float64
	lastEigenvalue   float64
}

// New validates inputs and prepares an iterator in the Initializing state.
//
// Implementation:
//   - Stage 1 (Validate): non-nil square matrix, positive finite tolerance,
//     positive iteration budget, well-formed initial vector if supplied.
//   - Stage 2 (Prepare): quantize the matrix once to the active mode, build
//     the start vector (supplied or seed-deterministic random), normalize
//     and quantize it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadTolerance, ErrBadMaxIterations,
//     ErrBadInitialVector.
//
// Complexity: O(n²) time and memory (matrix quantization).
func New(a *matrix.Dense, trueEigenvalue float64, mode precision.Mode, opts Options) (*Iterator, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}
	if math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) || opts.Tolerance <= 0 {
		return nil, ErrBadTolerance
	}
	if opts.MaxIterations < 1 {
		return nil, ErrBadMaxIterations
	}

	n := a.Rows()
	x, err := startVector(n, opts)
	if err != nil {
		return nil, err
	}
	precision.QuantizeInPlace(x, mode)

	// Floor resolution: 0 → mode default, negative → disabled.
	floor := opts.Floor
	if floor == 0 {
		floor = mode.AccuracyFloor()
	} else if floor < 0 {
		floor = 0
	}

	return &Iterator{
		a:       precision.QuantizeMatrix(a, mode),
		trueEig: trueEigenvalue,
		mode:    mode,
		opts:    opts,
		n:       n,
		x:       x,
		state:   Initializing,
		floor:   floor,
	}, nil
}

// startVector returns the supplied initial vector normalized, or a random
// unit vector drawn from the seeded stream.
func startVector(n int, opts Options) ([]float64, error) {
	if opts.InitialVector != nil {
		if len(opts.InitialVector) != n {
			return nil, ErrBadInitialVector
		}
		x := make([]float64, n)
		for i, v := range opts.InitialVector {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrBadInitialVector
			}
			x[i] = v
		}
		norm := matrix.Norm2(x)
		if norm < divergenceEps {
			return nil, ErrBadInitialVector
		}
		for i := range x {
			x[i] /= norm
		}

		return x, nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	norm := matrix.Norm2(x)
	if norm < divergenceEps {
		// A zero Gaussian draw is a measure-zero event; fall back to e₀ so
		// the run can still start deterministically.
		x[0] = 1
		norm = 1
	}
	for i := range x {
		x[i] /= norm
	}

	return x, nil
}

// State returns the current life-cycle state.
func (it *Iterator) State() State { return it.state }

// ThresholdReached reports whether the run stopped at the precision's
// accuracy floor rather than at the requested tolerance.
func (it *Iterator) ThresholdReached() bool { return it.thresholdReached }

// Iterations returns the number of completed steps.
func (it *Iterator) Iterations() int { return it.iter }

// Vector returns a copy of the current (quantized, unit) iterate.
func (it *Iterator) Vector() []float64 {
	out := make([]float64, len(it.x))
	copy(out, it.x)

	return out
}

// Next advances the solver by one step.
//
// Returns the step's observation and whether the iterator may be stepped
// again (false once a terminal state is reached). Calling Next on a
// terminal iterator returns a zero Step and false.
//
// Complexity: O(n²) per call.
func (it *Iterator) Next() (Step, bool) {
	if it.state.Terminal() {
		return Step{}, false
	}
	it.state = Iterating

	step := Step{Iteration: it.iter, Eigenvalue: it.lastEigenvalue, RelativeError: ErrorNotComputed}

	// w = A·x, quantized after the multiply. Shapes are fixed at
	// construction, so the kernel cannot fail here.
	w, err := matrix.MatVec(it.a, it.x)
	if err != nil {
		it.state = Diverged

		return step, false
	}
	precision.QuantizeInPlace(w, it.mode)

	norm := matrix.Norm2(w)
	step.VectorNorm = norm
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm < divergenceEps {
		// Numerically zero (or overflowed) iterate: normalizing would divide
		// by ~0. Recorded as data, not thrown.
		it.state = Diverged
		it.iter++

		return step, false
	}

	for i := range w {
		w[i] /= norm
	}
	precision.QuantizeInPlace(w, it.mode)

	// Rayleigh quotient on the normalized vector for a stable estimate.
	z, _ := matrix.MatVec(it.a, w)
	precision.QuantizeInPlace(z, it.mode)
	lambda, _ := matrix.Dot(w, z)
	step.Eigenvalue = lambda
	it.lastEigenvalue = lambda

	// Residual ‖A·x − λ·x‖ tracks how far the pair is from an eigenpair.
	res := make([]float64, it.n)
	for i := range res {
		res[i] = z[i] - lambda*w[i]
	}
	step.ResidualNorm = matrix.Norm2(res)

	step.RelativeError = RelativeError(lambda, it.trueEig)

	it.x = w
	it.iter++

	// Stop conditions, in priority order: requested tolerance, precision
	// floor (only when it is coarser than the tolerance), step budget.
	switch {
	case step.RelativeError >= 0 && step.RelativeError < it.opts.Tolerance:
		it.state = Converged
	case it.floor > it.opts.Tolerance && step.RelativeError >= 0 && step.RelativeError < it.floor:
		it.state = Converged
		it.thresholdReached = true
	case it.iter >= it.opts.MaxIterations:
		it.state = MaxIterationsReached
	}

	return step, !it.state.Terminal()
}

// Run drives a fresh iterator to a terminal state and collects the full
// step history. Terminal outcomes are reported in Result.State; the error
// return covers parameter validation only.
func Run(a *matrix.Dense, trueEigenvalue float64, mode precision.Mode, opts Options) (Result, error) {
	it, err := New(a, trueEigenvalue, mode, opts)
	if err != nil {
		return Result{}, err
	}

	steps := make([]Step, 0, opts.MaxIterations)
	for {
		step, more := it.Next()
		steps = append(steps, step)
		if !more {
			break
		}
	}

	res := Result{
		State:            it.State(),
		Steps:            steps,
		ThresholdReached: it.ThresholdReached(),
		Iterations:       len(steps),
		RelativeError:    ErrorNotComputed,
	}
	if len(steps) > 0 {
		last := steps[len(steps)-1]
		res.Eigenvalue = last.Eigenvalue
		res.RelativeError = last.RelativeError
	}

	return res, nil
}

// RelativeError returns |estimate − reference| / |reference|, or
// ErrorNotComputed when the reference is exactly zero or the result is not
// a finite number — the division is guarded rather than allowed to
// propagate Inf/NaN into traces.
func RelativeError(estimate, reference float64) float64 {
	if reference == 0 {
		return ErrorNotComputed
	}
	e := math.Abs(estimate-reference) / math.Abs(reference)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return ErrorNotComputed
	}

	return e
}
