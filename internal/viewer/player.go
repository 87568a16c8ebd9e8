// Package viewer plays a trace back frame by frame.
package viewer

import (
	"fmt"

	"github.com/Vlad-Shcherbina/halite/internal/core"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
)

// CheckDrawable reports whether t has a non-empty grid to paint. Validate
// accepts zero-sized grids; an image cannot have them.
func CheckDrawable(t *trace.Trace) error {
	size := t.Size()
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("cannot display a %dx%d grid", size.W, size.H)
	}
	return nil
}

// Player tracks the playback cursor over a trace's frames.
type Player struct {
	trace  *trace.Trace
	frame  int
	paused bool
	step   *core.FixedStep
}

// NewPlayer starts paused on frame 0, advancing at fps when unpaused.
func NewPlayer(t *trace.Trace, fps int) *Player {
	return &Player{trace: t, paused: true, step: core.NewFixedStep(fps)}
}

// Frame returns the current frame index.
func (p *Player) Frame() int { return p.frame }

// Frames returns how many frames can be shown.
func (p *Player) Frames() int { return len(p.trace.Frames) }

// Current returns the grid at the cursor, or nil for an empty trace.
func (p *Player) Current() [][]core.Cell {
	if p.frame >= len(p.trace.Frames) {
		return nil
	}
	return p.trace.Frames[p.frame]
}

// Paused reports whether automatic playback is stopped.
func (p *Player) Paused() bool { return p.paused }

// Toggle flips between playing and paused.
func (p *Player) Toggle() { p.paused = !p.paused }

// Next moves forward one frame; it stops on the last frame.
func (p *Player) Next() bool {
	if p.frame+1 >= p.Frames() {
		return false
	}
	p.frame++
	return true
}

// Prev moves back one frame.
func (p *Player) Prev() bool {
	if p.frame == 0 {
		return false
	}
	p.frame--
	return true
}

// Rewind returns to frame 0 and pauses.
func (p *Player) Rewind() {
	p.frame = 0
	p.paused = true
}

// Tick advances playback when unpaused and the frame interval elapsed.
// Reaching the last frame pauses.
func (p *Player) Tick() {
	if p.paused || !p.step.ShouldStep() {
		return
	}
	if !p.Next() {
		p.paused = true
	}
}
