// Package precisionlens is an educational toolkit for watching the power
// method converge — and degrade — under reduced floating-point precision.
//
// 🚀 What is precisionlens?
//
//	A small, deterministic library (plus a trace-generating CLI) that:
//		• Builds symmetric positive-definite test matrices with a prescribed
//		  condition number and an analytically known dominant eigenvalue
//		• Simulates FP64 / FP32 / FP16 / FP8 arithmetic by value quantization
//		• Runs the power method step by step under any of the four precisions
//		• Records a full instrumented trace (timing, error, FLOPs, bandwidth)
//		  and serializes it as JSON for a static browser dashboard
//
// ✨ Why choose precisionlens?
//
//   - Reproducible – every matrix, vector and run is seed-deterministic
//   - Honest about failure – divergence, stagnation and precision floors are
//     reported as data, never thrown as errors
//   - Pure Go – no cgo, no hardware sub-word float types required
//
// Under the hood, everything is organized per concern:
//
//	matrix/      — dense symmetric matrices & the vector kernels the solver needs
//	matgen/      — SPD test-matrix generator with controlled conditioning
//	precision/   — precision modes & quantization (native + emulated widths)
//	powermethod/ — the dominant-eigenvalue iterator & cascading-precision runner
//	trace/       — instrumentation, trace documents, persistence, queries
//
// Quick sketch of one study run:
//
//	A, λ, _ := matgen.Generate(50, 100, 42)
//	r := trace.NewRunnerFor(A, λ, 100)
//	tr, _ := r.Run(precision.FP16, powermethod.DefaultOptions())
//	_ = trace.Save(tr, "traces/fp16_cond100_n50.json")
//
// The bundled CLI (cmd/precisionlens) batch-generates the full
// precision × condition-number trace library consumed by the dashboard.
//
//	go get github.com/katalvlaran/precisionlens
package precisionlens
