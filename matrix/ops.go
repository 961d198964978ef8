// SPDX-License-Identifier: MIT
// Package matrix: vector kernels used by the power-method hot loop.
//
// Purpose:
//   - Declare the canonical kernels (MatVec, Dot, Norm2) with strict
//     fail-fast validation and uniform error wrapping.
//
// Notes:
//   - All kernels use fixed loop orders for determinism.
//   - Operands are never mutated; MatVec allocates its result.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opDot    = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = a · x for a Dense matrix a and vector x.
//
// Implementation:
//   - Stage 1: validate a is non-nil and len(x) == a.Cols().
//   - Stage 2: single pass over the flat backing slice, fixed i→j order,
//     accumulating each row's dot product into y[i].
//
// Inputs:
//   - a: non-nil r×c matrix.
//   - x: vector of length c.
//
// Returns:
//   - []float64: freshly allocated result of length r.
//   - error: ErrNilMatrix or ErrDimensionMismatch, wrapped with opMatVec.
//
// Complexity:
//   - Time O(r*c), Space O(r) for the result.
func MatVec(a *Dense, x []float64) ([]float64, error) {
	// Validate operands
	if a == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	// Row-major walk: one contiguous slice segment per row
	y := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		row := a.data[i*a.c : (i+1)*a.c]
		sum := NormZero
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Dot computes the inner product of x and y.
//
// Implementation:
//   - Stage 1: validate equal lengths.
//   - Stage 2: single flat accumulation loop 0..n-1.
//
// Returns:
//   - float64: Σ x[i]*y[i].
//   - error: ErrDimensionMismatch wrapped with opDot.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	sum := NormZero
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Norm2 returns the Euclidean (L2) norm of x.
// An empty vector has norm 0 by convention.
// Complexity: O(n) time, O(1) space.
func Norm2(x []float64) float64 {
	sum := NormZero
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}
