package protocol

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// ErrIndexOutOfBounds is matched by every *IndexError.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError reports a grid cell the declared dimensions promised but the
// data did not contain.
type IndexError struct {
	Transition int
	Section    string
	X, Y       int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: transition %d, section %s, cell (%d,%d)", e.Transition, e.Section, e.X, e.Y)
}

// Is lets errors.Is match ErrIndexOutOfBounds.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers such as `head` close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
