package precision_test

import (
	"fmt"

	"github.com/katalvlaran/precisionlens/precision"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleQuantizeValue
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Snap the same value onto each precision grid and watch the loss grow as
//	the mantissa shrinks. With 3 mantissa bits (FP8) the grid step in
//	[8,16) is a full 1.0, so 10.2 collapses to 10.
func ExampleQuantizeValue() {
	x := 10.2
	for _, m := range precision.Modes() {
		fmt.Printf("%s: %.6f\n", m, precision.QuantizeValue(x, m))
	}
	// Output:
	// FP64: 10.200000
	// FP32: 10.200000
	// FP16: 10.203125
	// FP8: 10.000000
}
