// SPDX-License-Identifier: MIT

package precision

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates a precision name that is not one of FP64/FP32/FP16/FP8.
var ErrUnknownMode = errors.New("precision: unknown mode")

// Mode enumerates the simulated floating-point widths.
//
//   - FP64, FP32 — native widths; quantization is the IEEE-754 rounding of
//     a plain cast.
//   - FP16, FP8  — emulated widths; quantization snaps magnitudes to the
//     emulated mantissa grid (see Quantize).
type Mode int

const (
	// FP64 is native double precision (8 bytes, identity quantization).
	FP64 Mode = iota

	// FP32 is native single precision (4 bytes, float32 cast).
	FP32

	// FP16 is emulated half precision (2 bytes, 10 mantissa / 5 exponent bits).
	FP16

	// FP8 is emulated quarter precision (1 byte, 3 mantissa / 4 exponent bits).
	FP8
)

// Modes returns all four modes in descending width order (study order).
func Modes() []Mode {
	return []Mode{FP64, FP32, FP16, FP8}
}

// Accuracy floors: the smallest relative error the power method can sustain
// at each width before quantization noise dominates. Values follow the usual
// IEEE-754 precision limits used in mixed-precision studies.
const (
	floorFP64 = 1e-15
	floorFP32 = 1e-7
	floorFP16 = 1e-3
	floorFP8  = 1e-1
)

// String returns the canonical upper-case name of the mode.
func (m Mode) String() string {
	switch m {
	case FP64:
		return "FP64"
	case FP32:
		return "FP32"
	case FP16:
		return "FP16"
	case FP8:
		return "FP8"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ByteWidth returns the storage width in bytes, used for theoretical
// bandwidth estimates (emulated widths report their simulated size).
func (m Mode) ByteWidth() int {
	switch m {
	case FP64:
		return 8
	case FP32:
		return 4
	case FP16:
		return 2
	case FP8:
		return 1
	default:
		return 0
	}
}

// AccuracyFloor returns the smallest relative error realistically achievable
// at this width. The tracer stops a run that dips below the floor and flags
// it as threshold-limited rather than converged to the requested tolerance.
func (m Mode) AccuracyFloor() float64 {
	switch m {
	case FP64:
		return floorFP64
	case FP32:
		return floorFP32
	case FP16:
		return floorFP16
	case FP8:
		return floorFP8
	default:
		return 0
	}
}

// Emulated reports whether the mode is simulated by value quantization
// (no native hardware type at that width).
func (m Mode) Emulated() bool {
	return m == FP16 || m == FP8
}

// ParseMode resolves a case-insensitive mode name ("fp8", "FP32", ...).
// Returns ErrUnknownMode for anything else.
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FP64":
		return FP64, nil
	case "FP32":
		return FP32, nil
	case "FP16":
		return FP16, nil
	case "FP8":
		return FP8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
