// SPDX-License-Identifier: MIT
// Package powermethod: cascading-precision strategy.
//
// The cascade starts cheap — FP8 steps cost one byte per element of
// simulated traffic — and escalates FP16 → FP32 → FP64 only when the current
// stage has squeezed out the accuracy it can offer. The eigenvector is
// carried across transitions, so each stage resumes where the previous one
// stopped instead of restarting from a random vector.

package powermethod

import (
	"math"

	"github.com/katalvlaran/precisionlens/matrix"
	"github.com/katalvlaran/precisionlens/precision"
)

// TransitionReason explains why a cascade left a stage.
type TransitionReason string

const (
	// TransitionThreshold: the stage reached its precision's useful accuracy.
	TransitionThreshold TransitionReason = "threshold"

	// TransitionStagnation: the stage stopped improving for too long.
	TransitionStagnation TransitionReason = "stagnation"

	// TransitionTarget: the overall target error was met in this stage.
	TransitionTarget TransitionReason = "target"

	// TransitionExhausted: the global iteration budget ran out here.
	TransitionExhausted TransitionReason = "exhausted"

	// TransitionDiverged: the iterate collapsed to numerical zero here.
	TransitionDiverged TransitionReason = "diverged"
)

// cascadeStage couples a precision mode with its escalation criteria:
// transition once the relative error dips under threshold, or after
// maxStagnant consecutive steps without improvement.
type cascadeStage struct {
	mode        precision.Mode
	threshold   float64
	maxStagnant int
}

// cascadeStages is the fixed escalation ladder, coarsest first. Thresholds
// sit at each width's useful accuracy; stagnation budgets grow with cost so
// cheap stages give up quickly and expensive stages persist.
var cascadeStages = []cascadeStage{
	{mode: precision.FP8, threshold: 5e-2, maxStagnant: 10},
	{mode: precision.FP16, threshold: 1e-3, maxStagnant: 20},
	{mode: precision.FP32, threshold: 1e-7, maxStagnant: 50},
	{mode: precision.FP64, threshold: 1e-15, maxStagnant: 100},
}

// Defaults for CascadeOptions.
const (
	// DefaultCascadeTargetError is the overall relative-error goal.
	DefaultCascadeTargetError = 1e-10

	// DefaultCascadeMaxIterations bounds the total across all stages.
	DefaultCascadeMaxIterations = 1000
)

// CascadeOptions configures a cascading-precision run.
type CascadeOptions struct {
	TargetError   float64 // overall relative-error goal (> 0, finite)
	MaxIterations int     // total step budget across all stages (>= 1)
	Seed          int64   // stream for the FP8 start vector
}

// DefaultCascadeOptions returns the documented defaults.
func DefaultCascadeOptions() CascadeOptions {
	return CascadeOptions{
		TargetError:   DefaultCascadeTargetError,
		MaxIterations: DefaultCascadeMaxIterations,
		Seed:          DefaultSeed,
	}
}

// StageResult records one precision segment of a cascade.
type StageResult struct {
	Mode       precision.Mode
	Iterations int
	EntryError float64 // relative error when the stage began (ErrorNotComputed for the first)
	ExitError  float64 // relative error when the stage ended
	Reason     TransitionReason
}

// CascadeResult is the complete outcome of a cascading run.
type CascadeResult struct {
	Stages           []StageResult
	State            State
	Eigenvalue       float64
	RelativeError    float64
	TotalIterations  int
	ThresholdReached bool // true when the final stage stopped at its own floor
}

// Cascade runs the power method under the FP8→FP16→FP32→FP64 ladder.
//
// Implementation:
//   - Stage 1 (Validate): via the per-stage iterator constructors.
//   - Stage 2 (Escalate): run each precision until its threshold is reached
//     or progress stagnates, then hand the current eigenvector to the next
//     precision. Floor stopping inside the iterator is disabled; the ladder
//     owns the stage thresholds.
//   - Stage 3 (Finish): Converged when the target error is met, Diverged on
//     numerical collapse, MaxIterationsReached when the budget runs out.
//
// Complexity: O(total_steps · n²).
func Cascade(a *matrix.Dense, trueEigenvalue float64, opts CascadeOptions) (CascadeResult, error) {
	if math.IsNaN(opts.TargetError) || math.IsInf(opts.TargetError, 0) || opts.TargetError <= 0 {
		return CascadeResult{}, ErrBadTolerance
	}
	if opts.MaxIterations < 1 {
		return CascadeResult{}, ErrBadMaxIterations
	}

	res := CascadeResult{State: MaxIterationsReached, RelativeError: ErrorNotComputed}
	var carried []float64 // eigenvector handed from stage to stage
	lastErr := ErrorNotComputed

	for si, stage := range cascadeStages {
		remaining := opts.MaxIterations - res.TotalIterations
		if remaining <= 0 {
			break
		}

		it, err := New(a, trueEigenvalue, stage.mode, Options{
			Tolerance:     opts.TargetError,
			MaxIterations: remaining,
			InitialVector: carried,
			Seed:          opts.Seed,
			Floor:         -1, // the ladder owns stage thresholds
		})
		if err != nil {
			return CascadeResult{}, err
		}

		sr := StageResult{Mode: stage.mode, EntryError: lastErr}
		best := math.Inf(1)
		stagnant := 0
		lastStage := si == len(cascadeStages)-1

		for {
			step, more := it.Next()
			sr.Iterations++
			res.TotalIterations++
			if step.RelativeError >= 0 {
				lastErr = step.RelativeError
				res.Eigenvalue = step.Eigenvalue
				res.RelativeError = step.RelativeError
			}

			if !more {
				// Iterator hit a terminal state within this stage.
				switch it.State() {
				case Converged:
					sr.Reason = TransitionTarget
					res.State = Converged
				case Diverged:
					sr.Reason = TransitionDiverged
					res.State = Diverged
				default:
					sr.Reason = TransitionExhausted
					res.State = MaxIterationsReached
				}
				sr.ExitError = lastErr
				res.Stages = append(res.Stages, sr)

				return res, nil
			}

			// Stage escalation: useful accuracy reached for this width.
			if step.RelativeError >= 0 && step.RelativeError < stage.threshold && !lastStage {
				sr.Reason = TransitionThreshold

				break
			}

			// Stagnation watch: count steps without improvement of the best error.
			if step.RelativeError >= 0 && step.RelativeError < best {
				best = step.RelativeError
				stagnant = 0
			} else {
				stagnant++
			}
			if stagnant >= stage.maxStagnant {
				if lastStage {
					// Nothing finer to escalate to: the ladder is pinned at
					// FP64's floor.
					sr.Reason = TransitionThreshold
					sr.ExitError = lastErr
					res.Stages = append(res.Stages, sr)
					res.State = MaxIterationsReached
					res.ThresholdReached = true

					return res, nil
				}
				sr.Reason = TransitionStagnation

				break
			}
		}

		sr.ExitError = lastErr
		res.Stages = append(res.Stages, sr)
		carried = it.Vector()
	}

	return res, nil
}
