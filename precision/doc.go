// Package precision models the four floating-point widths of the study —
// FP64, FP32, FP16 and FP8 — as a tagged Mode carrying a byte width, an
// accuracy floor, and a deterministic quantization rule.
//
// 🚀 How emulation works:
//
//	FP64 and FP32 rely on the native float64/float32 representations
//	(quantization is the IEEE-754 rounding of a plain cast). The runtime has
//	no 16- or 8-bit hardware float, so FP16 and FP8 are emulated by value
//	quantization: the magnitude is snapped to the nearest level representable
//	with the emulated mantissa width, values below the emulated normal range
//	underflow to zero, and values beyond it overflow to ±Inf.
//
// ✨ Guarantees (covered by tests):
//   - deterministic: same value + same mode ⇒ same output, no hidden state
//   - idempotent: Quantize(Quantize(x)) == Quantize(x)
//   - sign-symmetric: Quantize(-x) == -Quantize(x); zero maps to zero
//   - non-finite pass-through: NaN and ±Inf are returned untouched, so
//     downstream traces can detect and surface them
//
// ⚙️ Usage:
//
//	xq := precision.Quantize(x, precision.FP8)
//	aq := precision.QuantizeMatrix(a, precision.FP16)
//
// The AccuracyFloor of each mode is the smallest relative error the power
// method can realistically sustain at that width; the tracer uses it to flag
// runs that stopped at the precision's limit rather than at the requested
// tolerance.
package precision
