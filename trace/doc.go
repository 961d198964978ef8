// Package trace instruments power-method runs and turns them into durable,
// dashboard-ready JSON documents.
//
// 🚀 What a trace contains:
//
//	metadata — precision, simulated byte width, matrix parameters, the
//	           requested tolerance, the terminal state, convergence and
//	           accuracy-floor flags, and the final relative error
//	trace    — one record per iteration: wall time, cumulative time,
//	           eigenvalue estimate, relative error, vector/residual norms,
//	           theoretical FLOPs and bytes moved, and the derived
//	           instantaneous FLOPS / bandwidth rates
//	summary  — totals, averages, peaks, and time-to-error milestones
//
// ✨ Guard rails (all covered by tests):
//   - a step whose measured duration is zero (coarse clocks, fast steps)
//     records rate fields as 0 instead of dividing by zero
//   - summary averages skip zero rates and never divide by a zero
//     iteration or time total
//   - relative errors that could not be computed carry the explicit
//     powermethod.ErrorNotComputed marker (-1), never NaN
//   - non-finite eigenvalues/norms serialize as JSON null (Float), so
//     downstream consumers can detect them; they are never coerced to zero
//   - cumulative_time is non-decreasing and iteration indices are
//     contiguous from 0
//
// ⚙️ Usage:
//
//	r, _ := trace.NewRunner(50, 100, 42)
//	tr, _ := r.Run(precision.FP8, powermethod.DefaultOptions())
//	_ = trace.Save(tr, "traces/fp8_cond100_n50.json")
//
//	if tt, ok := trace.TimeToError(tr, 1e-3); ok {
//		fmt.Printf("reached 1e-3 after %.6fs\n", tt)
//	}
package trace
