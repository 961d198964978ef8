// SPDX-License-Identifier: MIT

package matgen

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/precisionlens/matrix"
)

var (
	// ErrBadSize indicates a requested matrix size below 1.
	ErrBadSize = errors.New("matgen: size must be >= 1")

	// ErrBadCondition indicates a condition number below 1 or non-finite.
	ErrBadCondition = errors.New("matgen: condition number must be finite and >= 1")

	// ErrDegenerateBasis indicates Gram–Schmidt breakdown (a column collapsed
	// to numerical zero). With a continuous Gaussian source this is a
	// measure-zero event, but it is guarded rather than divided through.
	ErrDegenerateBasis = errors.New("matgen: degenerate random basis")
)

// minEigenvalue anchors the bottom of the spectrum; the top is then exactly
// the requested condition number.
const minEigenvalue = 1.0

// basisEps is the Gram–Schmidt breakdown threshold.
const basisEps = 1e-12

// Generate builds a size×size symmetric positive-definite matrix whose
// eigenvalues are linearly spaced over [1, conditionNumber], together with
// its dominant eigenvalue.
//
// Implementation:
//   - Stage 1 (Validate): size >= 1, conditionNumber finite and >= 1.
//   - Stage 2 (Spectrum): λ_i = 1 + (κ-1)·i/(size-1); for size == 1 the
//     spectrum is the single value 1 and the "matrix" is [[1]].
//   - Stage 3 (Basis): seeded Gaussian matrix, columns orthonormalized by
//     modified Gram–Schmidt.
//   - Stage 4 (Assemble): A = Q·diag(λ)·Qᵀ, computed on the upper triangle
//     and mirrored so symmetry holds exactly.
//
// Inputs:
//   - size: matrix dimension, >= 1.
//   - conditionNumber: desired max/min eigenvalue ratio, >= 1.
//   - seed: fixes the pseudo-random stream; identical inputs reproduce a
//     bit-identical matrix.
//
// Returns:
//   - *matrix.Dense: the test matrix (immutable by convention after return).
//   - float64: the dominant eigenvalue (analytic, not solver-derived).
//   - error: ErrBadSize, ErrBadCondition or ErrDegenerateBasis.
//
// Complexity:
//   - Time O(size³), Space O(size²).
func Generate(size int, conditionNumber float64, seed int64) (*matrix.Dense, float64, error) {
	// Fail fast on malformed parameters.
	if size < 1 {
		return nil, 0, ErrBadSize
	}
	if math.IsNaN(conditionNumber) || math.IsInf(conditionNumber, 0) || conditionNumber < 1 {
		return nil, 0, ErrBadCondition
	}

	eigs := spectrum(size, conditionNumber)
	dominant := eigs[size-1]

	// Degenerate 1×1 case: the matrix is its own (single) eigenvalue.
	if size == 1 {
		m, err := matrix.FromFunc(1, 1, func(_, _ int) float64 { return dominant })
		if err != nil {
			return nil, 0, err
		}

		return m, dominant, nil
	}

	q, err := orthonormalBasis(size, seed)
	if err != nil {
		return nil, 0, err
	}

	// A = Q·diag(λ)·Qᵀ, upper triangle mirrored for exact symmetry.
	a := make([][]float64, size)
	for i := range a {
		a[i] = make([]float64, size)
	}
	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += eigs[k] * q[k][i] * q[k][j]
			}
			a[i][j] = sum
			a[j][i] = sum
		}
	}

	m, err := matrix.FromFunc(size, size, func(i, j int) float64 { return a[i][j] })
	if err != nil {
		return nil, 0, err
	}

	return m, dominant, nil
}

// spectrum returns size eigenvalues linearly spaced over [1, κ], ascending.
// For size == 1 the spectrum collapses to {1} (the condition number is
// vacuously 1 regardless of the requested κ).
func spectrum(size int, conditionNumber float64) []float64 {
	eigs := make([]float64, size)
	if size == 1 {
		eigs[0] = minEigenvalue

		return eigs
	}

	step := (conditionNumber - minEigenvalue) / float64(size-1)
	for i := range eigs {
		eigs[i] = minEigenvalue + step*float64(i)
	}
	// Anchor the endpoint exactly: the dominant eigenvalue is κ by contract.
	eigs[size-1] = conditionNumber

	return eigs
}

// orthonormalBasis draws a size×size Gaussian matrix from the seeded stream
// and orthonormalizes its columns with modified Gram–Schmidt.
// q[k] is the k-th orthonormal column (length size).
func orthonormalBasis(size int, seed int64) ([][]float64, error) {
	rng := rand.New(rand.NewSource(seed))

	q := make([][]float64, size)
	for k := range q {
		col := make([]float64, size)
		for i := range col {
			col[i] = rng.NormFloat64()
		}
		// Remove projections onto the previously accepted columns.
		for p := 0; p < k; p++ {
			dot := 0.0
			for i := range col {
				dot += col[i] * q[p][i]
			}
			for i := range col {
				col[i] -= dot * q[p][i]
			}
		}
		norm := matrix.Norm2(col)
		if norm < basisEps {
			return nil, ErrDegenerateBasis
		}
		for i := range col {
			col[i] /= norm
		}
		q[k] = col
	}

	return q, nil
}
