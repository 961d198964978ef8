package trace_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/precisionlens/powermethod"
	"github.com/katalvlaran/precisionlens/precision"
	"github.com/katalvlaran/precisionlens/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveLoad_RoundTrip: a real run survives the disk round trip intact.
func TestSaveLoad_RoundTrip(t *testing.T) {
	r, err := trace.NewRunner(3, 10, 42)
	require.NoError(t, err)
	tr, err := r.Run(precision.FP64, powermethod.DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fp64_cond10_n3.json")
	require.NoError(t, trace.Save(tr, path))

	got, err := trace.Load(path)
	require.NoError(t, err)
	assert.Equal(t, tr.Metadata, got.Metadata)
	assert.Equal(t, tr.Summary, got.Summary)
	assert.Equal(t, len(tr.Records), len(got.Records))
}

// TestSave_CreatesParentDirectories: missing directories are not an error.
func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "run.json")
	err := trace.Save(&trace.Trace{}, path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err, "file must exist at the nested path")
}

// TestSave_NilTrace returns the dedicated sentinel.
func TestSave_NilTrace(t *testing.T) {
	err := trace.Save(nil, filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, err, trace.ErrNilTrace)
}

// TestLoad_Errors: missing files and malformed JSON report wrapped errors.
func TestLoad_Errors(t *testing.T) {
	_, err := trace.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err, "a missing file must surface")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = trace.Load(bad)
	assert.Error(t, err, "malformed JSON must surface")
}

// TestFloat_NonFiniteSerializesAsNull: NaN/Inf fields become JSON null on
// disk (encoding/json would otherwise refuse the document) and come back as
// NaN on load.
func TestFloat_NonFiniteSerializesAsNull(t *testing.T) {
	tr := &trace.Trace{
		Records: []trace.IterationRecord{
			{Iteration: 0, Eigenvalue: trace.Float(math.NaN()), VectorNorm: trace.Float(math.Inf(1))},
		},
	}

	path := filepath.Join(t.TempDir(), "nonfinite.json")
	require.NoError(t, trace.Save(tr, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"eigenvalue": null`), "NaN must serialize as null")

	got, err := trace.Load(path)
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.True(t, math.IsNaN(float64(got.Records[0].Eigenvalue)), "null must load back as NaN")
	assert.True(t, math.IsNaN(float64(got.Records[0].VectorNorm)), "Inf marshals to null, which loads as NaN")
}
