package board

import (
	"fmt"

	"github.com/wojtekolesinski/seabattle/models"
)

const (
	MinVesselLength = 1
	MaxVesselLength = 3
)

type Vessel struct {
	bow         models.Coord
	length      int
	orientation models.Orientation
	lives       int
}

func NewVessel(bow models.Coord, length int, orientation models.Orientation) (*Vessel, error) {
	if length < MinVesselLength || length > MaxVesselLength {
		return nil, fmt.Errorf("board.NewVessel: length %d not in [%d, %d]", length, MinVesselLength, MaxVesselLength)
	}
	if orientation != models.Horizontal && orientation != models.Vertical {
		return nil, fmt.Errorf("board.NewVessel: unknown orientation %d", orientation)
	}
	return &Vessel{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}, nil
}

// Cells lists the coordinates the vessel occupies, starting at the bow.
func (v *Vessel) Cells() []models.Coord {
	cells := make([]models.Coord, 0, v.length)
	for i := 0; i < v.length; i++ {
		c := v.bow
		if v.orientation == models.Vertical {
			c.Row += i
		} else {
			c.Col += i
		}
		cells = append(cells, c)
	}
	return cells
}

func (v *Vessel) occupies(c models.Coord) bool {
	for _, cell := range v.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (v *Vessel) Bow() models.Coord               { return v.bow }
func (v *Vessel) Length() int                     { return v.length }
func (v *Vessel) Orientation() models.Orientation { return v.orientation }
func (v *Vessel) Lives() int                      { return v.lives }
func (v *Vessel) IsSunk() bool                    { return v.lives == 0 }

// hit takes one life and reports whether this hit sank the vessel.
// A sunk vessel stays at zero.
func (v *Vessel) hit() bool {
	if v.lives == 0 {
		return false
	}
	v.lives--
	return v.lives == 0
}
