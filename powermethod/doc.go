// Package powermethod computes the dominant eigenvalue of a symmetric matrix
// by power iteration, with every step's arithmetic quantized to a simulated
// floating-point precision.
//
// 🚀 Algorithm outline (one step):
//  1. w = A·x (matrix and vector pre-quantized to the active mode;
//     the product is quantized again after the multiply)
//  2. if ‖w‖ is numerically zero → Diverged (guards the normalization)
//  3. x ← w / ‖w‖, quantized
//  4. λ ← xᵀ·A·x (Rayleigh quotient on the normalized vector)
//  5. relative error vs. the analytically known dominant eigenvalue
//  6. error < tolerance → Converged; error under the precision's accuracy
//     floor → Converged with ThresholdReached; step budget exhausted →
//     MaxIterationsReached; otherwise keep Iterating
//
// ✨ Design:
//   - terminal outcomes are states, not errors: divergence, stagnation and
//     running out of iterations are expected, analyzable results of a
//     precision study, so the full per-iteration history is always returned
//   - the Iterator surface is step-wise (Next), letting an instrumentation
//     layer time each step; Run drives it to a terminal state for callers
//     that only want the result
//   - Cascade escalates FP8 → FP16 → FP32 → FP64, carrying the eigenvector
//     across stages: cheap low-precision steps do the coarse work, expensive
//     high-precision steps only polish
//
// ⚙️ Usage:
//
//	a, trueEig, _ := matgen.Generate(50, 100, 42)
//	res, err := powermethod.Run(a, trueEig, precision.FP16, powermethod.DefaultOptions())
//	fmt.Println(res.State, res.Eigenvalue, res.RelativeError)
//
// Complexity: O(n²) per step, O(steps·n²) per run.
package powermethod
