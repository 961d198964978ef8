// SPDX-License-Identifier: MIT
// Package trace: the persisted document model. Field names are a contract
// with the dashboard; renaming any json tag is a breaking change.

package trace

import (
	"encoding/json"
	"math"
)

// Float is a float64 that serializes non-finite values as JSON null instead
// of failing to marshal (encoding/json rejects NaN/±Inf). Consumers detect
// degenerate values by the null, which is deliberately not coerced to zero.
type Float float64

// MarshalJSON emits null for NaN/±Inf and the plain number otherwise.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(v)
}

// UnmarshalJSON maps null back to NaN and accepts plain numbers.
func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Float(math.NaN())

		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)

	return nil
}

// IterationRecord is one solver step. Records are appended in strict
// iteration order and never mutated afterwards.
type IterationRecord struct {
	Iteration      int     `json:"iteration"`       // 0-based, contiguous
	WallTime       float64 `json:"wall_time"`       // seconds, >= 0
	CumulativeTime float64 `json:"cumulative_time"` // seconds, non-decreasing
	Eigenvalue     Float   `json:"eigenvalue"`
	RelativeError  float64 `json:"relative_error"` // >= 0, or ErrorNotComputed (-1)
	ResidualNorm   Float   `json:"residual_norm"`
	VectorNorm     Float   `json:"vector_norm"`

	// Derived performance estimates. Rates are 0 when the measured step
	// duration was not positive (never Inf/NaN).
	TheoreticalFlops         float64 `json:"theoretical_flops"`
	TheoreticalBandwidthGbps float64 `json:"theoretical_bandwidth_gbps"`
	OpsCount                 int64   `json:"ops_count"`
	BytesTransferred         int64   `json:"bytes_transferred"`
}

// Metadata describes the run that produced a trace.
type Metadata struct {
	Precision       string  `json:"precision"`
	ByteWidth       int     `json:"dtype_bytes"`
	ConditionNumber float64 `json:"condition_number"`
	MatrixSize      int     `json:"matrix_size"`
	TrueEigenvalue  float64 `json:"true_eigenvalue"`
	GeneratedAt     string  `json:"timestamp"` // RFC 3339, UTC

	Converged            bool    `json:"converged"`
	ConvergenceIteration *int    `json:"convergence_iteration"`
	FinalError           float64 `json:"final_error"` // ErrorNotComputed on an empty run
	Tolerance            float64 `json:"tolerance"`
	MaxIterations        int     `json:"max_iterations"`

	// Accuracy-floor bookkeeping: the floor itself, whether the run stopped
	// there instead of at the requested tolerance, and on which iteration.
	AccuracyFloor      float64 `json:"ieee754_threshold"`
	ThresholdReached   bool    `json:"threshold_reached"`
	ThresholdIteration *int    `json:"threshold_iteration"`

	State string `json:"state"`
}

// Summary aggregates a completed run. Time-to-error milestones are nil when
// the corresponding error level was never reached.
type Summary struct {
	TotalIterations  int      `json:"total_iterations"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	TimeTo1e3Error   *float64 `json:"time_to_1e3_error"`
	TimeTo1e6Error   *float64 `json:"time_to_1e6_error"`
	TimeTo1e9Error   *float64 `json:"time_to_1e9_error"`

	AvgFlops          float64 `json:"avg_flops"`
	PeakFlops         float64 `json:"peak_flops"`
	AvgBandwidthGbps  float64 `json:"avg_bandwidth_gbps"`
	PeakBandwidthGbps float64 `json:"peak_bandwidth_gbps"`
	TotalOps          int64   `json:"total_ops"`
	TotalBytes        int64   `json:"total_bytes"`
}

// Trace is the complete, immutable record of one solver run: created by one
// completed run, persisted as a single serialized unit, never mutated.
type Trace struct {
	Metadata Metadata          `json:"metadata"`
	Records  []IterationRecord `json:"trace"`
	Summary  Summary           `json:"summary"`
}
