// Package tracegen builds synthetic traces for fixtures and manual runs of
// the dump pipeline. The frames it produces drift plausibly but do not follow
// game rules.
package tracegen

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Vlad-Shcherbina/halite/internal/core"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
	pcore "github.com/Vlad-Shcherbina/halite/pkg/core"
)

// MaxStrength caps cell strength.
const MaxStrength = 255

// moveWeights is the reference bot's distribution, indexed by move code:
// mostly STILL, otherwise one of the four directions.
var moveWeights = [...]int{
	core.MoveStill: 8,
	core.MoveNorth: 1,
	core.MoveEast:  1,
	core.MoveSouth: 1,
	core.MoveWest:  1,
}

var validate = validator.New()

// Config controls Generate.
type Config struct {
	Width         int `validate:"gt=0,lte=250"`
	Height        int `validate:"gt=0,lte=250"`
	Frames        int `validate:"gte=1"`
	Players       int `validate:"gte=1,ltefield=Cells"`
	Seed          int64
	MaxProduction int `validate:"gte=0"`

	// Cells is derived from Width*Height before validation.
	Cells int `validate:"-"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 30, Height: 30, Frames: 100, Players: 2, Seed: 42, MaxProduction: 15}
}

// Generate returns a deterministic trace for cfg. The result always passes
// trace.Validate.
func Generate(cfg Config) (*trace.Trace, error) {
	cfg.Cells = cfg.Width * cfg.Height
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("tracegen config: %w", err)
	}

	rng := pcore.NewRNG(cfg.Seed)
	w, h := cfg.Width, cfg.Height

	productions := core.NewGrid[int](w, h)
	for y := range productions {
		for x := range productions[y] {
			productions[y][x] = rng.IntN(cfg.MaxProduction + 1)
		}
	}

	frame := core.NewGrid[core.Cell](w, h)
	for y := range frame {
		for x := range frame[y] {
			frame[y][x].Strength = productions[y][x]
		}
	}
	placed := 0
	for placed < cfg.Players {
		x, y := rng.IntN(w), rng.IntN(h)
		if frame[y][x].Owner != 0 {
			continue
		}
		placed++
		frame[y][x] = core.Cell{Owner: placed, Strength: MaxStrength}
	}

	t := &trace.Trace{
		Width:       w,
		Height:      h,
		NumFrames:   cfg.Frames,
		Productions: productions,
		Frames:      [][][]core.Cell{frame},
		Moves:       make([][][]int, 0, cfg.Frames-1),
	}
	for i := 1; i < cfg.Frames; i++ {
		moves := pickMoves(rng, frame)
		frame = drift(frame, moves, productions)
		t.Moves = append(t.Moves, moves)
		t.Frames = append(t.Frames, frame)
	}
	return t, nil
}

func pickMoves(rng *pcore.RNG, frame [][]core.Cell) [][]int {
	moves := make([][]int, len(frame))
	for y, row := range frame {
		moves[y] = make([]int, len(row))
		for x, c := range row {
			if c.Owner != 0 {
				moves[y][x] = rng.WeightedIndex(moveWeights[:])
			}
		}
	}
	return moves
}

// drift copies frame, growing owned cells that hold still and emptying the
// ones that moved away.
func drift(frame [][]core.Cell, moves, productions [][]int) [][]core.Cell {
	next := core.CloneGrid(frame)
	for y, row := range next {
		for x := range row {
			c := &row[x]
			if c.Owner == 0 {
				continue
			}
			if moves[y][x] == core.MoveStill {
				c.Strength = min(c.Strength+productions[y][x], MaxStrength)
			} else {
				c.Strength = 0
			}
		}
	}
	return next
}
