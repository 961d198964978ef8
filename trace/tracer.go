// SPDX-License-Identifier: MIT
// Package trace: the instrumenting runner.
//
// Per-iteration theoretical cost model (dense power step):
//   - FLOPs: matrix-vector multiply ≈ 2n², normalization ≈ n  ⇒  2n² + n
//   - traffic: read A (n² elements) + read x (n) + write Ax (n), each at the
//     mode's simulated byte width  ⇒  (n² + 2n) · byte_width

package trace

import (
	"time"

	"github.com/katalvlaran/precisionlens/matgen"
	"github.com/katalvlaran/precisionlens/matrix"
	"github.com/katalvlaran/precisionlens/powermethod"
	"github.com/katalvlaran/precisionlens/precision"
)

// Runner owns one test matrix and produces one Trace per Run call.
// The matrix is immutable after construction; independent Runners share
// nothing and may be used from independent goroutines.
type Runner struct {
	Matrix          *matrix.Dense
	TrueEigenvalue  float64
	ConditionNumber float64
}

// NewRunner generates a fresh test matrix (see matgen.Generate) and wraps
// it in a Runner. Errors are matgen's validation sentinels.
func NewRunner(size int, conditionNumber float64, seed int64) (*Runner, error) {
	a, trueEig, err := matgen.Generate(size, conditionNumber, seed)
	if err != nil {
		return nil, err
	}

	return &Runner{Matrix: a, TrueEigenvalue: trueEig, ConditionNumber: conditionNumber}, nil
}

// NewRunnerFor wraps an existing matrix and its known dominant eigenvalue.
func NewRunnerFor(a *matrix.Dense, trueEigenvalue, conditionNumber float64) *Runner {
	return &Runner{Matrix: a, TrueEigenvalue: trueEigenvalue, ConditionNumber: conditionNumber}
}

// Run executes one power-method run under mode, clocking every step, and
// assembles the complete trace document.
//
// Implementation:
//   - Stage 1: build the iterator (validation errors surface immediately).
//   - Stage 2: drive Next(), measuring each step's wall time and deriving
//     the theoretical FLOPs / bytes / rates. Rates substitute 0 when the
//     measured duration is not positive — never a division by zero.
//   - Stage 3: assemble metadata and summary with zero-total guards.
//
// The error return covers parameter validation only; numerical outcomes
// (divergence, floor stops, exhausted budgets) are reported inside the Trace.
func (r *Runner) Run(mode precision.Mode, opts powermethod.Options) (*Trace, error) {
	it, err := powermethod.New(r.Matrix, r.TrueEigenvalue, mode, opts)
	if err != nil {
		return nil, err
	}

	n := r.Matrix.Rows()
	opsPerIter := int64(2*n*n + n)
	bytesPerIter := int64((n*n + 2*n) * mode.ByteWidth())

	records := make([]IterationRecord, 0, opts.MaxIterations)
	start := time.Now()
	for {
		stepStart := time.Now()
		step, more := it.Next()
		dur := time.Since(stepStart).Seconds()
		cum := time.Since(start).Seconds()

		rec := IterationRecord{
			Iteration:        step.Iteration,
			WallTime:         dur,
			CumulativeTime:   cum,
			Eigenvalue:       Float(step.Eigenvalue),
			RelativeError:    step.RelativeError,
			ResidualNorm:     Float(step.ResidualNorm),
			VectorNorm:       Float(step.VectorNorm),
			OpsCount:         opsPerIter,
			BytesTransferred: bytesPerIter,
		}
		// Zero-duration guard: very fast steps on coarse clocks measure 0s.
		if dur > 0 {
			rec.TheoreticalFlops = float64(opsPerIter) / dur
			rec.TheoreticalBandwidthGbps = float64(bytesPerIter) / dur / 1e9
		}
		records = append(records, rec)

		if !more {
			break
		}
	}
	totalTime := time.Since(start).Seconds()

	tr := &Trace{
		Metadata: r.metadata(mode, opts, it, records),
		Records:  records,
		Summary:  summarize(records, totalTime),
	}

	return tr, nil
}

// metadata assembles the run description from the terminal iterator.
func (r *Runner) metadata(mode precision.Mode, opts powermethod.Options, it *powermethod.Iterator, records []IterationRecord) Metadata {
	md := Metadata{
		Precision:       mode.String(),
		ByteWidth:       mode.ByteWidth(),
		ConditionNumber: r.ConditionNumber,
		MatrixSize:      r.Matrix.Rows(),
		TrueEigenvalue:  r.TrueEigenvalue,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		FinalError:      powermethod.ErrorNotComputed,
		Tolerance:       opts.Tolerance,
		MaxIterations:   opts.MaxIterations,
		AccuracyFloor:   mode.AccuracyFloor(),
		State:           it.State().String(),
	}

	if len(records) > 0 {
		md.FinalError = records[len(records)-1].RelativeError
	}

	md.ThresholdReached = it.ThresholdReached()
	terminal := it.Iterations() - 1
	switch {
	case it.State() == powermethod.Converged && md.ThresholdReached:
		md.ThresholdIteration = &terminal
	case it.State() == powermethod.Converged:
		md.Converged = true
		md.ConvergenceIteration = &terminal
	}

	return md
}

// summarize folds the record list into aggregates, skipping zero rates and
// guarding every division against zero totals.
func summarize(records []IterationRecord, totalTime float64) Summary {
	s := Summary{
		TotalIterations:  len(records),
		TotalTimeSeconds: totalTime,
	}

	flopsSum, flopsCount := 0.0, 0
	bwSum, bwCount := 0.0, 0
	for _, rec := range records {
		s.TotalOps += rec.OpsCount
		s.TotalBytes += rec.BytesTransferred

		if rec.TheoreticalFlops > 0 {
			flopsSum += rec.TheoreticalFlops
			flopsCount++
			if rec.TheoreticalFlops > s.PeakFlops {
				s.PeakFlops = rec.TheoreticalFlops
			}
		}
		if rec.TheoreticalBandwidthGbps > 0 {
			bwSum += rec.TheoreticalBandwidthGbps
			bwCount++
			if rec.TheoreticalBandwidthGbps > s.PeakBandwidthGbps {
				s.PeakBandwidthGbps = rec.TheoreticalBandwidthGbps
			}
		}
	}
	if flopsCount > 0 {
		s.AvgFlops = flopsSum / float64(flopsCount)
	}
	if bwCount > 0 {
		s.AvgBandwidthGbps = bwSum / float64(bwCount)
	}

	s.TimeTo1e3Error = timeToErrorPtr(records, 1e-3)
	s.TimeTo1e6Error = timeToErrorPtr(records, 1e-6)
	s.TimeTo1e9Error = timeToErrorPtr(records, 1e-9)

	return s
}
