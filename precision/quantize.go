// SPDX-License-Identifier: MIT
// Package precision: quantization kernels.
//
// Emulated widths are realized by mantissa-bit truncation with
// round-to-nearest, performed directly on the float64 bit pattern. Exponent
// clamping flushes sub-range magnitudes to zero and saturates super-range
// magnitudes to ±Inf, approximating what a genuine narrow-width float would
// exhibit without requiring sub-word hardware types.

package precision

import (
	"math"

	"github.com/katalvlaran/precisionlens/matrix"
)

// Emulated format parameters (explicit mantissa / exponent bit counts).
// FP16 mirrors IEEE binary16; FP8 mirrors the common 1-4-3 layout.
const (
	fp16MantissaBits = 10
	fp16ExponentBits = 5
	fp8MantissaBits  = 3
	fp8ExponentBits  = 4
)

const (
	float64MantissaBits = 52
	float64ExponentMask = 0x7FF
	float64ExponentBias = 1023
)

// QuantizeValue maps one value onto the representable grid of mode m.
//
// Behavior highlights:
//   - FP64: identity.
//   - FP32: IEEE-754 round via float32 cast (NaN/±Inf survive the cast).
//   - FP16/FP8: mantissa truncation with round-to-nearest; underflow → 0,
//     overflow → ±Inf, NaN/±Inf pass through untouched.
//   - Deterministic and idempotent for every mode.
//
// Complexity: O(1).
func QuantizeValue(x float64, m Mode) float64 {
	switch m {
	case FP32:
		return float64(float32(x))
	case FP16:
		return truncate(x, fp16MantissaBits, fp16ExponentBits)
	case FP8:
		return truncate(x, fp8MantissaBits, fp8ExponentBits)
	default: // FP64 and any unknown mode: identity
		return x
	}
}

// Quantize returns a fresh slice with every element of values mapped onto
// the representable grid of mode m. Shape is preserved; elements are
// independent (no cross-element dependency).
// Complexity: O(n) time and memory.
func Quantize(values []float64, m Mode) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = QuantizeValue(v, m)
	}

	return out
}

// QuantizeInPlace overwrites values with their quantized images.
// Intended for the solver hot loop where the source is no longer needed.
// Complexity: O(n) time, O(1) extra space.
func QuantizeInPlace(values []float64, m Mode) {
	if m == FP64 {
		return // identity; skip the walk
	}
	for i, v := range values {
		values[i] = QuantizeValue(v, m)
	}
}

// QuantizeMatrix returns a new matrix with every entry quantized to mode m.
// The input matrix is not mutated.
// Complexity: O(r*c) time and memory.
func QuantizeMatrix(a *matrix.Dense, m Mode) *matrix.Dense {
	if m == FP64 {
		return a.Clone()
	}

	return a.Map(func(v float64) float64 { return QuantizeValue(v, m) })
}

// truncate snaps x onto the grid of a float with mantBits explicit mantissa
// bits and expBits exponent bits.
//
// Implementation:
//   - Stage 1: pass non-finite values through untouched; zero is exact.
//   - Stage 2: round-to-nearest at the emulated mantissa width on the raw
//     bit pattern. A carry out of the mantissa bumps the exponent, which is
//     exactly the correct rounding under the IEEE bit layout.
//   - Stage 3: clamp the unbiased exponent to the emulated normal range:
//     below it the value underflows to signed zero, above it the value
//     saturates to ±Inf.
//
// Determinism:
//   - Pure bit arithmetic; no data-dependent randomness.
//
// Complexity: O(1).
func truncate(x float64, mantBits, expBits uint) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	shift := float64MantissaBits - mantBits
	bits := math.Float64bits(x)
	bits += 1 << (shift - 1)      // half-ulp of the emulated grid
	bits &^= uint64(1)<<shift - 1 // clear the discarded mantissa tail

	bias := int(1)<<(expBits-1) - 1
	e := int(bits>>float64MantissaBits&float64ExponentMask) - float64ExponentBias
	switch {
	case e < 1-bias:
		// Below the smallest emulated normal: underflow to zero, sign kept.
		return math.Copysign(0, x)
	case e > bias:
		// Beyond the emulated range: saturate to infinity, sign kept.
		if x > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	return math.Float64frombits(bits)
}
