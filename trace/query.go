// SPDX-License-Identifier: MIT

package trace

// TimeToError returns the cumulative wall time at which the run first
// achieved a relative error at or below threshold, and whether it ever did.
// Records carrying the not-computed marker (negative relative error) are
// skipped. An empty trace or a never-reached threshold reports ok=false.
func TimeToError(tr *Trace, threshold float64) (float64, bool) {
	if tr == nil {
		return 0, false
	}
	for _, rec := range tr.Records {
		if rec.RelativeError >= 0 && rec.RelativeError <= threshold {
			return rec.CumulativeTime, true
		}
	}

	return 0, false
}

// timeToErrorPtr is the summary-building form: nil when never reached.
func timeToErrorPtr(records []IterationRecord, threshold float64) *float64 {
	for _, rec := range records {
		if rec.RelativeError >= 0 && rec.RelativeError <= threshold {
			t := rec.CumulativeTime

			return &t
		}
	}

	return nil
}
