package powermethod_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/precisionlens/matgen"
	"github.com/katalvlaran/precisionlens/powermethod"
	"github.com/katalvlaran/precisionlens/precision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascade_ParameterValidation covers fail-fast option checks.
func TestCascade_ParameterValidation(t *testing.T) {
	a, trueEig, err := matgen.Generate(4, 10, 42)
	require.NoError(t, err)

	opts := powermethod.DefaultCascadeOptions()
	opts.TargetError = 0
	_, err = powermethod.Cascade(a, trueEig, opts)
	assert.ErrorIs(t, err, powermethod.ErrBadTolerance, "zero target must error")

	opts = powermethod.DefaultCascadeOptions()
	opts.TargetError = math.Inf(1)
	_, err = powermethod.Cascade(a, trueEig, opts)
	assert.ErrorIs(t, err, powermethod.ErrBadTolerance, "Inf target must error")

	opts = powermethod.DefaultCascadeOptions()
	opts.MaxIterations = 0
	_, err = powermethod.Cascade(a, trueEig, opts)
	assert.ErrorIs(t, err, powermethod.ErrBadMaxIterations, "zero budget must error")
}

// TestCascade_EscalatesAndConverges: the ladder starts at FP8, climbs, and
// the FP64 stage finishes the job to the full 1e-10 target.
func TestCascade_EscalatesAndConverges(t *testing.T) {
	a, trueEig, err := matgen.Generate(6, 100, 42)
	require.NoError(t, err)

	res, err := powermethod.Cascade(a, trueEig, powermethod.DefaultCascadeOptions())
	require.NoError(t, err)

	assert.Equal(t, powermethod.Converged, res.State, "cascade must reach the target")
	assert.Less(t, res.RelativeError, 1e-10, "final error must satisfy the target")
	assert.LessOrEqual(t, res.TotalIterations, 1000, "global budget must hold")

	require.GreaterOrEqual(t, len(res.Stages), 2, "at least one escalation must happen")
	assert.Equal(t, precision.FP8, res.Stages[0].Mode, "the ladder starts coarse")
	assert.Contains(t,
		[]powermethod.TransitionReason{powermethod.TransitionThreshold, powermethod.TransitionStagnation},
		res.Stages[0].Reason,
		"the first stage leaves via its threshold or by stagnating")
	assert.Equal(t, powermethod.TransitionTarget, res.Stages[len(res.Stages)-1].Reason,
		"the last stage ends by meeting the overall target")
}

// TestCascade_StageBookkeeping: iteration counts across stages must sum to
// the reported total, and each stage records its exit error.
func TestCascade_StageBookkeeping(t *testing.T) {
	a, trueEig, err := matgen.Generate(6, 100, 42)
	require.NoError(t, err)

	res, err := powermethod.Cascade(a, trueEig, powermethod.DefaultCascadeOptions())
	require.NoError(t, err)

	sum := 0
	for _, st := range res.Stages {
		sum += st.Iterations
		assert.Positive(t, st.Iterations, "%s stage must take at least one step", st.Mode)
		if st.ExitError >= 0 {
			assert.True(t, math.IsInf(st.ExitError, 0) == false, "exit errors stay finite")
		}
	}
	assert.Equal(t, res.TotalIterations, sum, "stage iterations must sum to the total")

	// The first stage has no predecessor, so its entry error is flagged.
	assert.Equal(t, powermethod.ErrorNotComputed, res.Stages[0].EntryError)
}

// TestCascade_TinyBudgetExhausts: a one-step budget must terminate cleanly
// with MaxIterationsReached inside the first stage.
func TestCascade_TinyBudgetExhausts(t *testing.T) {
	a, trueEig, err := matgen.Generate(6, 100, 42)
	require.NoError(t, err)

	opts := powermethod.DefaultCascadeOptions()
	opts.MaxIterations = 1
	res, err := powermethod.Cascade(a, trueEig, opts)
	require.NoError(t, err)

	assert.Equal(t, powermethod.MaxIterationsReached, res.State)
	assert.Equal(t, 1, res.TotalIterations)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, powermethod.TransitionExhausted, res.Stages[0].Reason)
}

// TestCascade_Deterministic: identical inputs reproduce identical ladders.
func TestCascade_Deterministic(t *testing.T) {
	a, trueEig, err := matgen.Generate(5, 10, 7)
	require.NoError(t, err)

	r1, err := powermethod.Cascade(a, trueEig, powermethod.DefaultCascadeOptions())
	require.NoError(t, err)
	r2, err := powermethod.Cascade(a, trueEig, powermethod.DefaultCascadeOptions())
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "cascade must be fully deterministic")
}
