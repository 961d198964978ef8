package precision_test

import (
	"testing"

	"github.com/katalvlaran/precisionlens/precision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMode_ByteWidth pins the simulated storage widths used for bandwidth math.
func TestMode_ByteWidth(t *testing.T) {
	assert.Equal(t, 8, precision.FP64.ByteWidth())
	assert.Equal(t, 4, precision.FP32.ByteWidth())
	assert.Equal(t, 2, precision.FP16.ByteWidth())
	assert.Equal(t, 1, precision.FP8.ByteWidth())
}

// TestMode_AccuracyFloor verifies floors are ordered by width: a narrower
// format can never promise a tighter error than a wider one.
func TestMode_AccuracyFloor(t *testing.T) {
	assert.Less(t, precision.FP64.AccuracyFloor(), precision.FP32.AccuracyFloor())
	assert.Less(t, precision.FP32.AccuracyFloor(), precision.FP16.AccuracyFloor())
	assert.Less(t, precision.FP16.AccuracyFloor(), precision.FP8.AccuracyFloor())
	assert.Equal(t, 1e-1, precision.FP8.AccuracyFloor(), "documented FP8 floor")
}

// TestMode_StringAndEmulated pins names and the emulated flag.
func TestMode_StringAndEmulated(t *testing.T) {
	assert.Equal(t, "FP16", precision.FP16.String())
	assert.False(t, precision.FP64.Emulated(), "FP64 is native")
	assert.False(t, precision.FP32.Emulated(), "FP32 is native")
	assert.True(t, precision.FP16.Emulated(), "FP16 is emulated")
	assert.True(t, precision.FP8.Emulated(), "FP8 is emulated")
}

// TestParseMode covers case-insensitive parsing and the unknown sentinel.
func TestParseMode(t *testing.T) {
	m, err := precision.ParseMode("fp8")
	require.NoError(t, err)
	assert.Equal(t, precision.FP8, m)

	m, err = precision.ParseMode(" FP64 ")
	require.NoError(t, err)
	assert.Equal(t, precision.FP64, m)

	_, err = precision.ParseMode("bf16")
	assert.ErrorIs(t, err, precision.ErrUnknownMode, "unsupported name must error")
}

// TestModes_CoversAllFour guards the study iteration order.
func TestModes_CoversAllFour(t *testing.T) {
	assert.Equal(t,
		[]precision.Mode{precision.FP64, precision.FP32, precision.FP16, precision.FP8},
		precision.Modes())
}
