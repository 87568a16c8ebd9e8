package core

import (
	"encoding/json"
	"fmt"
)

// Size describes the dimensions of a trace grid.
type Size struct {
	W int
	H int
}

// Cell is one grid site: the controlling player and the strength it holds.
// Owner 0 is neutral.
type Cell struct {
	Owner    int
	Strength int
}

// UnmarshalJSON decodes the two-element [owner, strength] wire form.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("cell: expected [owner, strength], got %d values", len(pair))
	}
	c.Owner, c.Strength = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes the cell as [owner, strength].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Owner, c.Strength})
}

// Move codes as recorded in a trace.
const (
	MoveStill = iota
	MoveNorth
	MoveEast
	MoveSouth
	MoveWest
)
