package trace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vlad-Shcherbina/halite/internal/core"
)

func sampleTrace() *Trace {
	return &Trace{
		Width:       2,
		Height:      1,
		NumFrames:   2,
		Productions: [][]int{{3, 5}},
		Frames: [][][]core.Cell{
			{{{Owner: 0, Strength: 0}, {Owner: 1, Strength: 10}}},
			{{{Owner: 1, Strength: 5}, {Owner: 1, Strength: 5}}},
		},
		Moves: [][][]int{{{0, 2}}},
	}
}

func TestLoadFixture(t *testing.T) {
	tr, err := Load(filepath.Join("testdata", "two_by_one.json"))
	require.NoError(t, err)
	assert.Equal(t, sampleTrace(), tr)
	assert.Equal(t, core.Size{W: 2, H: 1}, tr.Size())
	require.NoError(t, Validate(tr))
}

func TestSaveLoadCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"trace.json", "trace.json.gz", "trace.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sampleTrace()), name)
		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, sampleTrace(), got, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"frames": [[[[1,2,3]]]]}`), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "cell")
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	tr, err := Decode(strings.NewReader(`{"version": 11, "width": 3, "num_frames": 1, "frames": [[]]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Width)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Trace)
		field  string
	}{
		{name: "ok", mutate: func(*Trace) {}},
		{
			name:   "too few moves",
			mutate: func(tr *Trace) { tr.NumFrames = 3 },
			field:  "moves count",
		},
		{
			name: "frames count",
			mutate: func(tr *Trace) {
				tr.Frames = tr.Frames[:1]
			},
			field: "frames count",
		},
		{
			name:   "moves rows",
			mutate: func(tr *Trace) { tr.Height = 2 },
			field:  "moves[0] rows",
		},
		{
			name:   "moves columns",
			mutate: func(tr *Trace) { tr.Moves[0][0] = []int{0} },
			field:  "moves[0] columns",
		},
		{
			name: "frame columns",
			mutate: func(tr *Trace) {
				tr.Frames[0][0] = append(tr.Frames[0][0], core.Cell{})
			},
			field: "frames[0] columns",
		},
		{
			name: "frame rows",
			mutate: func(tr *Trace) {
				tr.Frames[0] = append(tr.Frames[0], tr.Frames[0][0])
			},
			field: "frames[0] rows",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := sampleTrace()
			tc.mutate(tr)
			err := Validate(tr)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrShapeMismatch)
			var se *ShapeError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.field, se.Field)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidateRejectsMissingMoves(t *testing.T) {
	tr := sampleTrace()
	tr.NumFrames = 3
	tr.Frames = append(tr.Frames, tr.Frames[1])

	err := Validate(tr)
	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ShapeError{Field: "moves count", Expected: 2, Actual: 1}, *se)
}

func TestValidateSamplesOnlyFirstGrids(t *testing.T) {
	tr := sampleTrace()
	tr.Frames[1][0] = tr.Frames[1][0][:1]
	assert.NoError(t, Validate(tr), "later frames are not inspected")
}

func TestValidateSingleFrame(t *testing.T) {
	tr := sampleTrace()
	tr.NumFrames = 1
	tr.Frames = tr.Frames[:1]
	tr.Moves = nil
	require.NoError(t, Validate(tr))
	assert.Zero(t, tr.Transitions())
}

func TestTransition(t *testing.T) {
	tr := sampleTrace()
	tn, err := tr.Transition(0)
	require.NoError(t, err)
	assert.Equal(t, 0, tn.Index)
	assert.Equal(t, tr.Productions, tn.Productions)
	assert.Equal(t, tr.Frames[0], tn.Before)
	assert.Equal(t, tr.Frames[1], tn.After)
	assert.Equal(t, tr.Moves[0], tn.Moves)

	tests := []struct {
		name   string
		mutate func(*Trace)
		index  int
		grid   string
	}{
		{name: "past moves", mutate: func(*Trace) {}, index: 1, grid: "moves"},
		{name: "negative", mutate: func(*Trace) {}, index: -1, grid: "moves"},
		{name: "no next frame", mutate: func(tr *Trace) { tr.Frames = tr.Frames[:1] }, index: 0, grid: "frames"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := sampleTrace()
			tc.mutate(tr)
			_, err := tr.Transition(tc.index)
			require.ErrorIs(t, err, ErrMissingGrid)
			var me *MissingGridError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, MissingGridError{Transition: tc.index, Grid: tc.grid}, *me)
		})
	}
}
