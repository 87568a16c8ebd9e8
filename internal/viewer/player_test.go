package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vlad-Shcherbina/halite/internal/core"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
	"github.com/Vlad-Shcherbina/halite/internal/tracegen"
)

func TestPlayerNavigation(t *testing.T) {
	tr, err := tracegen.Generate(tracegen.Config{Width: 3, Height: 3, Frames: 3, Players: 1, Seed: 1})
	require.NoError(t, err)

	p := NewPlayer(tr, 30)
	assert.True(t, p.Paused())
	assert.Equal(t, 3, p.Frames())
	assert.Equal(t, tr.Frames[0], p.Current())

	assert.False(t, p.Prev())
	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.False(t, p.Next(), "stops on the last frame")
	assert.Equal(t, 2, p.Frame())
	assert.Equal(t, tr.Frames[2], p.Current())

	p.Toggle()
	assert.False(t, p.Paused())
	p.Rewind()
	assert.Zero(t, p.Frame())
	assert.True(t, p.Paused())
}

func TestPlayerTick(t *testing.T) {
	tr, err := tracegen.Generate(tracegen.Config{Width: 2, Height: 2, Frames: 2, Players: 1, Seed: 1})
	require.NoError(t, err)

	p := NewPlayer(tr, 30)
	p.Tick()
	assert.Zero(t, p.Frame(), "paused players do not advance")

	p.Toggle()
	p.Tick()
	assert.Equal(t, 1, p.Frame(), "first tick after start advances")
}

func TestCheckDrawable(t *testing.T) {
	flat := &trace.Trace{
		Width:     3,
		Height:    0,
		NumFrames: 2,
		Frames:    [][][]core.Cell{{}, {}},
		Moves:     [][][]int{{}},
	}
	require.NoError(t, trace.Validate(flat), "zero height passes the structural check")
	assert.ErrorContains(t, CheckDrawable(flat), "3x0")

	flat.Width, flat.Height = 0, 2
	assert.Error(t, CheckDrawable(flat))

	tr, err := tracegen.Generate(tracegen.Config{Width: 2, Height: 3, Frames: 1, Players: 1})
	require.NoError(t, err)
	assert.NoError(t, CheckDrawable(tr))
}
