package precision_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisionlens/matrix"
	"github.com/katalvlaran/precisionlens/precision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuantizeValue_FP64Identity verifies the native wide mode is a no-op.
func TestQuantizeValue_FP64Identity(t *testing.T) {
	for _, x := range []float64{0, 1, -1, math.Pi, 1e-300, 1e300} {
		assert.Equal(t, x, precision.QuantizeValue(x, precision.FP64), "FP64 must be identity")
	}
}

// TestQuantizeValue_FP32NativeRounding verifies the float32 cast rounding
// and that finite input never produces NaN.
func TestQuantizeValue_FP32NativeRounding(t *testing.T) {
	x := 1.0000000001 // below float32 resolution
	q := precision.QuantizeValue(x, precision.FP32)
	assert.Equal(t, float64(float32(x)), q, "FP32 must round per IEEE-754 single")
	assert.False(t, math.IsNaN(q), "finite input must not quantize to NaN")

	// Representable values survive exactly.
	assert.Equal(t, 0.5, precision.QuantizeValue(0.5, precision.FP32))
}

// TestQuantizeValue_Idempotence: quantize∘quantize == quantize for all modes.
func TestQuantizeValue_Idempotence(t *testing.T) {
	inputs := []float64{0, 1, -1, 0.1, -0.1, math.Pi, 1e-5, 3.77, 123.456, 1e-9, 240, 65504}
	for _, m := range precision.Modes() {
		for _, x := range inputs {
			once := precision.QuantizeValue(x, m)
			twice := precision.QuantizeValue(once, m)
			assert.Equal(t, once, twice, "mode %s, x=%v: quantization must be idempotent", m, x)
		}
	}
}

// TestQuantizeValue_SignSymmetry: quantize(-x) == -quantize(x) and 0 ↦ 0.
func TestQuantizeValue_SignSymmetry(t *testing.T) {
	inputs := []float64{0.1, 1.7, 42.42, 1e-3, 999}
	for _, m := range []precision.Mode{precision.FP16, precision.FP8} {
		assert.Equal(t, 0.0, precision.QuantizeValue(0, m), "zero must map to zero")
		for _, x := range inputs {
			pos := precision.QuantizeValue(x, m)
			neg := precision.QuantizeValue(-x, m)
			assert.Equal(t, -pos, neg, "mode %s, x=%v: sign must be preserved", m, x)
		}
	}
}

// TestQuantizeValue_NonFinitePassThrough: NaN and ±Inf are returned untouched.
func TestQuantizeValue_NonFinitePassThrough(t *testing.T) {
	for _, m := range precision.Modes() {
		assert.True(t, math.IsNaN(precision.QuantizeValue(math.NaN(), m)), "NaN must pass through %s", m)
		assert.True(t, math.IsInf(precision.QuantizeValue(math.Inf(1), m), 1), "+Inf must pass through %s", m)
		assert.True(t, math.IsInf(precision.QuantizeValue(math.Inf(-1), m), -1), "-Inf must pass through %s", m)
	}
}

// TestQuantizeValue_UnderflowToZero: magnitudes below the emulated normal
// range flush to zero.
func TestQuantizeValue_UnderflowToZero(t *testing.T) {
	// FP16 min normal ≈ 6.1e-5; FP8 (1-4-3) min normal = 2^-6 ≈ 1.56e-2.
	assert.Equal(t, 0.0, precision.QuantizeValue(1e-6, precision.FP16), "below FP16 range")
	assert.Equal(t, 0.0, precision.QuantizeValue(1e-3, precision.FP8), "below FP8 range")

	// Just above the FP8 min normal must survive.
	assert.NotEqual(t, 0.0, precision.QuantizeValue(0.02, precision.FP8), "above FP8 range must not flush")
}

// TestQuantizeValue_OverflowToInf: magnitudes beyond the emulated range
// saturate to ±Inf (recorded as such downstream, never clamped silently).
func TestQuantizeValue_OverflowToInf(t *testing.T) {
	assert.True(t, math.IsInf(precision.QuantizeValue(1e6, precision.FP16), 1), "FP16 overflow → +Inf")
	assert.True(t, math.IsInf(precision.QuantizeValue(-1e6, precision.FP16), -1), "FP16 overflow → -Inf")
	assert.True(t, math.IsInf(precision.QuantizeValue(1e3, precision.FP8), 1), "FP8 overflow → +Inf")
}

// TestQuantizeValue_FP8Grid pins a few exact grid points of the 1-4-3 layout.
func TestQuantizeValue_FP8Grid(t *testing.T) {
	// With 3 mantissa bits the grid step in [8,16) is 1.0.
	assert.Equal(t, 10.0, precision.QuantizeValue(10.2, precision.FP8), "10.2 snaps to 10")
	assert.Equal(t, 10.0, precision.QuantizeValue(9.8, precision.FP8), "9.8 snaps to 10")
	// Powers of two are exact at any mantissa width.
	assert.Equal(t, 0.25, precision.QuantizeValue(0.25, precision.FP8))
}

// TestQuantizeValue_FP16Grid verifies the FP16 grid is far finer than FP8's.
func TestQuantizeValue_FP16Grid(t *testing.T) {
	x := 10.2
	q16 := precision.QuantizeValue(x, precision.FP16)
	q8 := precision.QuantizeValue(x, precision.FP8)
	assert.InDelta(t, x, q16, 1e-2, "FP16 error small")
	assert.Less(t, math.Abs(x-q16), math.Abs(x-q8), "FP16 must beat FP8 on the same value")
}

// TestQuantize_SliceShapeAndPurity verifies shape preservation and that the
// source slice is untouched.
func TestQuantize_SliceShapeAndPurity(t *testing.T) {
	src := []float64{0.1, -0.1, 100, 0}
	out := precision.Quantize(src, precision.FP8)
	require.Len(t, out, len(src), "shape must be preserved")
	assert.Equal(t, []float64{0.1, -0.1, 100, 0}, src, "source must not be mutated")

	// Determinism: a second call yields identical output.
	assert.Equal(t, out, precision.Quantize(src, precision.FP8))
}

// TestQuantizeInPlace matches the pure variant element-wise.
func TestQuantizeInPlace(t *testing.T) {
	src := []float64{0.3, 7.7, -2.5}
	want := precision.Quantize(src, precision.FP16)

	precision.QuantizeInPlace(src, precision.FP16)
	assert.Equal(t, want, src, "in-place must agree with the pure variant")
}

// TestQuantizeMatrix verifies element-wise application and input immutability.
func TestQuantizeMatrix(t *testing.T) {
	a, err := matrix.FromFunc(2, 2, func(i, j int) float64 { return 10.2 })
	require.NoError(t, err)

	q := precision.QuantizeMatrix(a, precision.FP8)
	v, err := q.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "entries must be snapped to the FP8 grid")

	orig, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.2, orig, "input matrix must not be mutated")
}
