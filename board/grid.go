package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wojtekolesinski/seabattle/models"
)

const DefaultSize = 6

// Grid is one side's sea: the cell states, the fleet and the set of busy
// cells. During setup the busy set holds vessel cells and the reserved water
// around them; after FinalizeSetup it holds the cells that were shot at or
// revealed around sunk vessels.
type Grid struct {
	size    int
	hidden  bool
	cells   [][]models.Cell
	vessels []*Vessel
	busy    map[models.Coord]struct{}
	sunk    int
	playing bool
}

func NewGrid(size int, hidden bool) *Grid {
	cells := make([][]models.Cell, size)
	for i := range cells {
		cells[i] = make([]models.Cell, size)
	}
	return &Grid{
		size:   size,
		hidden: hidden,
		cells:  cells,
		busy:   make(map[models.Coord]struct{}),
	}
}

func (g *Grid) Size() int             { return g.size }
func (g *Grid) Hidden() bool          { return g.hidden }
func (g *Grid) SetHidden(hidden bool) { g.hidden = hidden }
func (g *Grid) SunkCount() int        { return g.sunk }
func (g *Grid) Playing() bool         { return g.playing }

func (g *Grid) Vessels() []*Vessel {
	res := make([]*Vessel, len(g.vessels))
	copy(res, g.vessels)
	return res
}

// IsDefeated reports whether every vessel on the grid is sunk.
func (g *Grid) IsDefeated() bool {
	return g.sunk == len(g.vessels)
}

// Place adds the vessel to the grid and reserves the cells around it so no
// other vessel can touch it. The reserved cells keep looking like water.
func (g *Grid) Place(v *Vessel) error {
	if g.playing {
		return fmt.Errorf("board.Place: %w", ErrSetupFinished)
	}
	if v == nil || v.length < MinVesselLength || v.length > MaxVesselLength {
		return fmt.Errorf("board.Place: %w", ErrInvalidPlacement)
	}

	cells := v.Cells()
	for _, c := range cells {
		if g.out(c) || g.isBusy(c) {
			return fmt.Errorf("board.Place %s: %w", c, ErrInvalidPlacement)
		}
	}

	for _, c := range cells {
		g.cells[c.Row][c.Col] = models.Occupied
		g.busy[c] = struct{}{}
	}
	g.vessels = append(g.vessels, v)
	g.contour(v, false)
	return nil
}

// FinalizeSetup ends the placement phase. The placement reservations are
// dropped so the busy set starts over as shot history. Cell states and
// vessels are kept.
func (g *Grid) FinalizeSetup() error {
	if g.playing {
		return fmt.Errorf("board.FinalizeSetup: %w", ErrSetupFinished)
	}
	g.busy = make(map[models.Coord]struct{})
	g.playing = true
	return nil
}

// ResolveShot fires at c. A target can be resolved only once; cells revealed
// around a sunk vessel count as resolved too.
func (g *Grid) ResolveShot(c models.Coord) (models.Outcome, error) {
	if !g.playing {
		return models.Miss, fmt.Errorf("board.ResolveShot: %w", ErrSetupInProgress)
	}
	if g.out(c) {
		return models.Miss, fmt.Errorf("board.ResolveShot %s: %w", c, ErrOutOfBounds)
	}
	if g.isBusy(c) {
		return models.Miss, fmt.Errorf("board.ResolveShot %s: %w", c, ErrAlreadyResolved)
	}
	g.busy[c] = struct{}{}

	for _, v := range g.vessels {
		if !v.occupies(c) {
			continue
		}
		g.cells[c.Row][c.Col] = models.Struck
		if v.hit() {
			g.sunk++
			g.contour(v, true)
			return models.Sunk, nil
		}
		return models.Hit, nil
	}

	g.cells[c.Row][c.Col] = models.Missed
	return models.Miss, nil
}

// contour marks every free in-bounds neighbour of the vessel as busy. With
// reveal set the neighbours are also shown as excluded water.
func (g *Grid) contour(v *Vessel, reveal bool) {
	for _, c := range v.Cells() {
		for _, n := range c.Neighbours() {
			if g.out(n) || g.isBusy(n) {
				continue
			}
			if reveal {
				g.cells[n.Row][n.Col] = models.Excluded
			}
			g.busy[n] = struct{}{}
		}
	}
}

func (g *Grid) out(c models.Coord) bool {
	return c.Row < 0 || c.Row >= g.size || c.Col < 0 || c.Col >= g.size
}

func (g *Grid) isBusy(c models.Coord) bool {
	_, ok := g.busy[c]
	return ok
}

// Cell returns the visible state of c, ignoring the hidden flag.
func (g *Grid) Cell(c models.Coord) (models.Cell, error) {
	if g.out(c) {
		return models.Empty, fmt.Errorf("board.Cell %s: %w", c, ErrOutOfBounds)
	}
	return g.cells[c.Row][c.Col], nil
}

// Render returns a copy of the cell states, indexed [row][col]. Vessel cells
// that were not hit show as empty when the grid is hidden.
func (g *Grid) Render() [][]models.Cell {
	res := make([][]models.Cell, g.size)
	for i, row := range g.cells {
		res[i] = make([]models.Cell, g.size)
		for j, cell := range row {
			if g.hidden && cell == models.Occupied {
				cell = models.Empty
			}
			res[i][j] = cell
		}
	}
	return res
}

var glyphs = map[models.Cell]string{
	models.Empty:    "O",
	models.Occupied: "■",
	models.Struck:   "X",
	models.Missed:   "T",
	models.Excluded: ".",
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("   |")
	for i := 0; i < g.size; i++ {
		sb.WriteString(" " + strconv.Itoa(i+1) + " |")
	}
	sb.WriteString("\n")

	for i, row := range g.Render() {
		sb.WriteString(fmt.Sprintf("%-2d |", i+1))
		for _, cell := range row {
			sb.WriteString(" " + glyphs[cell] + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
