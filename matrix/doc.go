// Package matrix provides the dense linear-algebra primitives the power
// method needs: a row-major Dense matrix plus the vector kernels
// (matrix-vector product, dot product, Euclidean norm) used on every
// iteration of the solver.
//
// ✨ Design:
//   - Dense stores elements in a flat slice for cache friendliness
//   - all kernels validate shapes up front and return sentinel errors
//     (match with errors.Is); no kernel panics on user input
//   - operands are never mutated; results are freshly allocated
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDense(3, 3)
//	_ = a.Set(0, 0, 2.0)
//	y, err := matrix.MatVec(a, []float64{1, 0, 0})
//
// Complexity: MatVec is O(r·c), Dot and Norm2 are O(n), accessors are O(1).
package matrix
