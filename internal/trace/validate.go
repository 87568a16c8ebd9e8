package trace

import (
	"errors"
	"fmt"

	"github.com/Vlad-Shcherbina/halite/internal/core"
)

// ErrShapeMismatch is matched by every *ShapeError.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError reports a declared count or dimension that disagrees with the
// decoded data.
type ShapeError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch: %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

// Is lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

// Validate checks the structural preconditions for emission: the move and
// frame counts against num_frames, then the shape of moves[0] and frames[0].
//
// Only those two grids are sampled, and only the width of their first row.
// Later grids and ragged rows are left for the emitter to report. A grid
// that does not exist (moves[0] of a single-frame trace) is skipped.
func Validate(t *Trace) error {
	if got, want := len(t.Moves), t.NumFrames-1; got != want {
		return &ShapeError{Field: "moves count", Expected: want, Actual: got}
	}
	if got, want := len(t.Frames), t.NumFrames; got != want {
		return &ShapeError{Field: "frames count", Expected: want, Actual: got}
	}
	if len(t.Moves) > 0 {
		if err := checkShape("moves[0]", t.Moves[0], t.Width, t.Height); err != nil {
			return err
		}
	}
	if len(t.Frames) > 0 {
		if err := checkShape("frames[0]", t.Frames[0], t.Width, t.Height); err != nil {
			return err
		}
	}
	return nil
}

func checkShape[T any](name string, rows [][]T, width, height int) error {
	h, w := core.Shape(rows)
	if h != height {
		return &ShapeError{Field: name + " rows", Expected: height, Actual: h}
	}
	if h > 0 && w != width {
		return &ShapeError{Field: name + " columns", Expected: width, Actual: w}
	}
	return nil
}
