// Package trace models a recorded replay: the static production layer, a
// sequence of ownership/strength frames, and the move grids applied between
// them.
package trace

import (
	"errors"
	"fmt"

	"github.com/Vlad-Shcherbina/halite/internal/core"
)

// Trace is a decoded replay. It is read once and never mutated.
type Trace struct {
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	NumFrames   int             `json:"num_frames"`
	Productions [][]int         `json:"productions"`
	Frames      [][][]core.Cell `json:"frames"`
	Moves       [][][]int       `json:"moves"`
}

// Size returns the declared grid dimensions.
func (t *Trace) Size() core.Size { return core.Size{W: t.Width, H: t.Height} }

// Transition pairs a frame with the moves applied to it and the frame that
// followed.
type Transition struct {
	Index       int
	Productions [][]int
	Before      [][]core.Cell
	Moves       [][]int
	After       [][]core.Cell
}

// Transitions reports how many transitions the declared frame count implies.
func (t *Trace) Transitions() int {
	if t.NumFrames < 1 {
		return 0
	}
	return t.NumFrames - 1
}

// ErrMissingGrid is matched by every *MissingGridError.
var ErrMissingGrid = errors.New("missing grid")

// MissingGridError reports a transition whose move grid or following frame
// is absent from the decoded data.
type MissingGridError struct {
	Transition int
	// Grid is "moves" or "frames".
	Grid string
}

func (e *MissingGridError) Error() string {
	return fmt.Sprintf("transition %d: missing %s grid", e.Transition, e.Grid)
}

// Is lets errors.Is match ErrMissingGrid.
func (e *MissingGridError) Is(target error) bool { return target == ErrMissingGrid }

// Transition returns transition i from the decoded grids. Only the moves[i]
// and frames[i+1] grids are required to exist; their shape is not checked.
func (t *Trace) Transition(i int) (Transition, error) {
	if i < 0 || i >= len(t.Moves) {
		return Transition{}, &MissingGridError{Transition: i, Grid: "moves"}
	}
	if i+1 >= len(t.Frames) {
		return Transition{}, &MissingGridError{Transition: i, Grid: "frames"}
	}
	return Transition{
		Index:       i,
		Productions: t.Productions,
		Before:      t.Frames[i],
		Moves:       t.Moves[i],
		After:       t.Frames[i+1],
	}, nil
}
