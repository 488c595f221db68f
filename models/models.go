package models

import "fmt"

// Coord is a cell position on a grid, zero based.
type Coord struct {
	Row int
	Col int
}

var neighbourOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbours returns the 8 surrounding coordinates. Some of them may lie
// outside of any grid.
func (c Coord) Neighbours() []Coord {
	res := make([]Coord, 0, len(neighbourOffsets))
	for _, o := range neighbourOffsets {
		res = append(res, Coord{c.Row + o.Row, c.Col + o.Col})
	}
	return res
}

// String formats the coordinate the way a player types it: 1-based row then column.
func (c Coord) String() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Outcome is the result of a resolved shot.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Sunk
)

// Repeat reports whether the shooter keeps the move.
func (o Outcome) Repeat() bool {
	return o == Hit || o == Sunk
}

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Cell is the visible state of a single grid cell.
type Cell int

const (
	Empty Cell = iota
	Occupied
	Struck
	Missed
	// Excluded is water revealed around a sunk vessel. It cannot hold a
	// vessel and cannot be shot at.
	Excluded
)

type Stats struct {
	Shots int
	Hits  int
	Sunk  int
}

func (s Stats) Accuracy() float32 {
	if s.Shots == 0 {
		return 0
	}
	return float32(s.Hits) / float32(s.Shots) * 100
}
