package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vlad-Shcherbina/halite/internal/core"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
)

const (
	productionWidth = 2
	strengthWidth   = 3
)

// Option tweaks how Emit writes.
type Option func(*options)

type options struct {
	buffered bool
	workers  int
	log      *zap.Logger
}

// WithBuffered renders the whole protocol in memory and writes it only if
// every transition succeeded.
func WithBuffered(on bool) Option {
	return func(o *options) { o.buffered = on }
}

// WithWorkers renders up to n transitions concurrently. Values below 2 keep
// rendering sequential. Parallel rendering is always buffered.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger logs per-transition progress at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Count returns the number of protocol blocks Emit writes for t.
func Count(t *trace.Trace) int { return t.Transitions() }

// Emit writes one protocol block per transition of t, in order. t must have
// passed trace.Validate. Grids that turn out shorter than declared yield an
// *IndexError; in streaming mode the blocks before the failure have already
// been written.
func Emit(w io.Writer, t *trace.Trace, opts ...Option) error {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.workers > 1:
		return emitParallel(w, t, o)
	case o.buffered:
		var buf bytes.Buffer
		if err := emitSequential(&buf, t, o); err != nil {
			return err
		}
		_, err := buf.WriteTo(w)
		return err
	default:
		bw := bufio.NewWriter(w)
		err := emitSequential(bw, t, o)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
		return err
	}
}

func emitSequential(w io.Writer, t *trace.Trace, o options) error {
	var block []byte
	for i := 0; i < Count(t); i++ {
		var err error
		block, err = AppendTransition(block[:0], t, i)
		if err != nil {
			return err
		}
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("write transition %d: %w", i, err)
		}
		o.log.Debug("transition emitted", zap.Int("transition", i), zap.Int("bytes", len(block)))
	}
	return nil
}

func emitParallel(w io.Writer, t *trace.Trace, o options) error {
	n := Count(t)
	blocks := make([][]byte, n)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			block, err := AppendTransition(nil, t, i)
			if err != nil {
				return err
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, block := range blocks {
		if _, err := bw.Write(block); err != nil {
			return fmt.Errorf("write transition %d: %w", i, err)
		}
		o.log.Debug("transition emitted", zap.Int("transition", i), zap.Int("bytes", len(block)))
	}
	return bw.Flush()
}

// AppendTransition appends the protocol block for transition i to buf.
func AppendTransition(buf []byte, t *trace.Trace, i int) ([]byte, error) {
	tn, err := t.Transition(i)
	if err != nil {
		var missing *trace.MissingGridError
		if !errors.As(err, &missing) {
			return buf, err
		}
		section := "moves"
		if missing.Grid == "frames" {
			section = "next_owner"
		}
		return buf, &IndexError{Transition: i, Section: section, X: -1, Y: -1}
	}
	size := t.Size()

	buf = strconv.AppendInt(buf, int64(size.W), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(size.H), 10)
	buf = append(buf, '\n')

	sections := []struct {
		name string
		pad  int
		at   func(x, y int) (int, bool)
	}{
		{"production", productionWidth, func(x, y int) (int, bool) { return core.At(tn.Productions, x, y) }},
		{"owner", 0, owner(tn.Before)},
		{"strength", strengthWidth, strength(tn.Before)},
		{"moves", 0, func(x, y int) (int, bool) { return core.At(tn.Moves, x, y) }},
		{"next_owner", 0, owner(tn.After)},
		{"next_strength", strengthWidth, strength(tn.After)},
	}

	for _, s := range sections {
		buf = append(buf, s.name...)
		buf = append(buf, '\n')
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				v, ok := s.at(x, y)
				if !ok {
					return buf, &IndexError{Transition: i, Section: s.name, X: x, Y: y}
				}
				buf = appendPadded(buf, v, s.pad)
				buf = append(buf, ' ')
			}
			buf = append(buf, '\n')
		}
	}
	return buf, nil
}

func owner(frame [][]core.Cell) func(x, y int) (int, bool) {
	return func(x, y int) (int, bool) {
		c, ok := core.At(frame, x, y)
		return c.Owner, ok
	}
}

func strength(frame [][]core.Cell) func(x, y int) (int, bool) {
	return func(x, y int) (int, bool) {
		c, ok := core.At(frame, x, y)
		return c.Strength, ok
	}
}

// appendPadded appends v right-justified in a field of at least width bytes.
func appendPadded(buf []byte, v, width int) []byte {
	var tmp [20]byte
	digits := strconv.AppendInt(tmp[:0], int64(v), 10)
	for pad := width - len(digits); pad > 0; pad-- {
		buf = append(buf, ' ')
	}
	return append(buf, digits...)
}
