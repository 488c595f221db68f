package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/wojtekolesinski/seabattle/models"
)

func mustVessel(t *testing.T, row, col, length int, o models.Orientation) *Vessel {
	t.Helper()
	v, err := NewVessel(models.Coord{Row: row, Col: col}, length, o)
	if err != nil {
		t.Fatalf("NewVessel(%d, %d, %d): %v", row, col, length, err)
	}
	return v
}

func TestVesselCells(t *testing.T) {
	tests := []struct {
		name string
		o    models.Orientation
		want []models.Coord
	}{
		{"horizontal", models.Horizontal, []models.Coord{{Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}}},
		{"vertical", models.Vertical, []models.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustVessel(t, 1, 2, 3, tt.o)
			for i := 0; i < 2; i++ {
				got := v.Cells()
				if len(got) != len(tt.want) {
					t.Fatalf("Expected %d cells, got %d", len(tt.want), len(got))
				}
				for j := range got {
					if got[j] != tt.want[j] {
						t.Errorf("Expected cell %d to be %v, got %v", j, tt.want[j], got[j])
					}
				}
			}
		})
	}
}

func TestNewVesselRejectsBadLength(t *testing.T) {
	for _, length := range []int{0, -1, 4} {
		if _, err := NewVessel(models.Coord{}, length, models.Horizontal); err == nil {
			t.Errorf("Expected error for length %d", length)
		}
	}
}

func TestVesselHit(t *testing.T) {
	v := mustVessel(t, 0, 0, 2, models.Horizontal)
	if v.hit() {
		t.Errorf("Expected first hit not to sink a two-decker")
	}
	if !v.hit() {
		t.Errorf("Expected second hit to sink")
	}
	if v.hit() {
		t.Errorf("Expected a sunk vessel not to sink again")
	}
	if v.Lives() != 0 || !v.IsSunk() {
		t.Errorf("Expected 0 lives, got %d", v.Lives())
	}
}

func TestPlaceRespectsContour(t *testing.T) {
	g := NewGrid(DefaultSize, false)
	if err := g.Place(mustVessel(t, 0, 0, 2, models.Horizontal)); err != nil {
		t.Fatalf("Place: %v", err)
	}

	err := g.Place(mustVessel(t, 0, 2, 1, models.Horizontal))
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("Expected ErrInvalidPlacement next to a vessel, got %v", err)
	}
	err = g.Place(mustVessel(t, 1, 2, 1, models.Horizontal))
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("Expected ErrInvalidPlacement diagonal to a vessel, got %v", err)
	}
	if err := g.Place(mustVessel(t, 3, 3, 1, models.Horizontal)); err != nil {
		t.Errorf("Expected placement at (3,3) to succeed, got %v", err)
	}

	// reserved cells still look like water
	for _, c := range []models.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		cell, err := g.Cell(c)
		if err != nil {
			t.Fatalf("Cell(%v): %v", c, err)
		}
		if cell != models.Empty {
			t.Errorf("Expected %v to stay empty, got %v", c, cell)
		}
	}
	if len(g.Vessels()) != 2 {
		t.Errorf("Expected 2 vessels, got %d", len(g.Vessels()))
	}
}

func TestPlaceRejects(t *testing.T) {
	tests := []struct {
		name   string
		vessel func(t *testing.T) *Vessel
	}{
		{"out of bounds bow", func(t *testing.T) *Vessel { return mustVessel(t, -1, 0, 1, models.Horizontal) }},
		{"sticks out to the right", func(t *testing.T) *Vessel { return mustVessel(t, 5, 4, 3, models.Horizontal) }},
		{"sticks out to the bottom", func(t *testing.T) *Vessel { return mustVessel(t, 5, 5, 2, models.Vertical) }},
		{"overlap", func(t *testing.T) *Vessel { return mustVessel(t, 2, 1, 3, models.Vertical) }},
		{"zero value", func(*testing.T) *Vessel { return &Vessel{} }},
		{"too long", func(*testing.T) *Vessel { return &Vessel{length: MaxVesselLength + 1, lives: MaxVesselLength + 1} }},
		{"nil", func(*testing.T) *Vessel { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(DefaultSize, false)
			if err := g.Place(mustVessel(t, 3, 0, 3, models.Horizontal)); err != nil {
				t.Fatalf("Place: %v", err)
			}
			if err := g.Place(tt.vessel(t)); !errors.Is(err, ErrInvalidPlacement) {
				t.Errorf("Expected ErrInvalidPlacement, got %v", err)
			}
			if len(g.Vessels()) != 1 {
				t.Errorf("Expected rejected vessel not to be added")
			}

			_ = g.FinalizeSetup()
			for col := 0; col < 3; col++ {
				if _, err := g.ResolveShot(models.Coord{Row: 3, Col: col}); err != nil {
					t.Fatalf("ResolveShot: %v", err)
				}
			}
			if !g.IsDefeated() {
				t.Errorf("Expected grid to be defeated once its only vessel sank")
			}
		})
	}
}

func TestPhases(t *testing.T) {
	g := NewGrid(DefaultSize, false)
	if _, err := g.ResolveShot(models.Coord{}); !errors.Is(err, ErrSetupInProgress) {
		t.Errorf("Expected ErrSetupInProgress, got %v", err)
	}
	if err := g.FinalizeSetup(); err != nil {
		t.Fatalf("FinalizeSetup: %v", err)
	}
	if err := g.FinalizeSetup(); !errors.Is(err, ErrSetupFinished) {
		t.Errorf("Expected ErrSetupFinished, got %v", err)
	}
	if err := g.Place(mustVessel(t, 0, 0, 1, models.Horizontal)); !errors.Is(err, ErrSetupFinished) {
		t.Errorf("Expected ErrSetupFinished, got %v", err)
	}
}

func TestSinkingSingleDecker(t *testing.T) {
	g := NewGrid(DefaultSize, false)
	if err := g.Place(mustVessel(t, 2, 2, 1, models.Horizontal)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := g.FinalizeSetup(); err != nil {
		t.Fatalf("FinalizeSetup: %v", err)
	}

	outcome, err := g.ResolveShot(models.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("ResolveShot: %v", err)
	}
	if outcome != models.Sunk {
		t.Errorf("Expected sunk, got %v", outcome)
	}
	if !g.IsDefeated() {
		t.Errorf("Expected grid to be defeated")
	}

	for _, n := range (models.Coord{Row: 2, Col: 2}).Neighbours() {
		cell, _ := g.Cell(n)
		if cell != models.Excluded {
			t.Errorf("Expected %v to be revealed as excluded, got %v", n, cell)
		}
		if _, err := g.ResolveShot(n); !errors.Is(err, ErrAlreadyResolved) {
			t.Errorf("Expected revealed cell %v to be resolved, got %v", n, err)
		}
	}
	if cell, _ := g.Cell(models.Coord{Row: 2, Col: 2}); cell != models.Struck {
		t.Errorf("Expected vessel cell to be struck, got %v", cell)
	}
	if !strings.Contains(g.String(), " . |") || strings.Contains(g.String(), " T |") {
		t.Errorf("Expected the halo to be drawn as excluded water:\n%s", g)
	}
}

func TestHaloAtEdge(t *testing.T) {
	g := NewGrid(DefaultSize, false)
	if err := g.Place(mustVessel(t, 0, 0, 1, models.Horizontal)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	_ = g.FinalizeSetup()

	if _, err := g.ResolveShot(models.Coord{}); err != nil {
		t.Fatalf("ResolveShot: %v", err)
	}
	missed := 0
	for _, row := range g.Render() {
		for _, cell := range row {
			if cell == models.Excluded {
				missed++
			}
		}
	}
	if missed != 3 {
		t.Errorf("Expected 3 revealed cells in the corner, got %d", missed)
	}
}

func TestResolveShot(t *testing.T) {
	g := NewGrid(DefaultSize, false)
	if err := g.Place(mustVessel(t, 1, 1, 2, models.Vertical)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := g.Place(mustVessel(t, 4, 4, 1, models.Horizontal)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	_ = g.FinalizeSetup()

	// (0,0) was reserved during setup, in play it is plain water
	steps := []struct {
		target  models.Coord
		outcome models.Outcome
		err     error
		sunk    int
	}{
		{models.Coord{Row: 0, Col: 0}, models.Miss, nil, 0},
		{models.Coord{Row: 0, Col: 0}, models.Miss, ErrAlreadyResolved, 0},
		{models.Coord{Row: 6, Col: 0}, models.Miss, ErrOutOfBounds, 0},
		{models.Coord{Row: 0, Col: -1}, models.Miss, ErrOutOfBounds, 0},
		{models.Coord{Row: 1, Col: 1}, models.Hit, nil, 0},
		{models.Coord{Row: 1, Col: 1}, models.Miss, ErrAlreadyResolved, 0},
		{models.Coord{Row: 2, Col: 1}, models.Sunk, nil, 1},
		{models.Coord{Row: 3, Col: 2}, models.Miss, ErrAlreadyResolved, 1},
		{models.Coord{Row: 4, Col: 4}, models.Sunk, nil, 2},
		{models.Coord{Row: 4, Col: 4}, models.Miss, ErrAlreadyResolved, 2},
	}

	for i, s := range steps {
		outcome, err := g.ResolveShot(s.target)
		if s.err != nil {
			if !errors.Is(err, s.err) {
				t.Errorf("step %d: Expected %v, got %v", i, s.err, err)
			}
		} else if err != nil {
			t.Errorf("step %d: unexpected error %v", i, err)
		} else if outcome != s.outcome {
			t.Errorf("step %d: Expected %v, got %v", i, s.outcome, outcome)
		}
		if g.SunkCount() != s.sunk {
			t.Errorf("step %d: Expected sunk count %d, got %d", i, s.sunk, g.SunkCount())
		}
	}

	if !g.IsDefeated() {
		t.Errorf("Expected grid to be defeated")
	}
	for _, v := range g.Vessels() {
		if v.Lives() != 0 {
			t.Errorf("Expected vessel at %v to have 0 lives, got %d", v.Bow(), v.Lives())
		}
	}
}

func TestRenderHidden(t *testing.T) {
	g := NewGrid(DefaultSize, true)
	if err := g.Place(mustVessel(t, 0, 0, 2, models.Horizontal)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	_ = g.FinalizeSetup()
	if _, err := g.ResolveShot(models.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("ResolveShot: %v", err)
	}

	r := g.Render()
	if r[0][0] != models.Struck {
		t.Errorf("Expected hit to be visible, got %v", r[0][0])
	}
	if r[0][1] != models.Empty {
		t.Errorf("Expected hidden vessel cell to render empty, got %v", r[0][1])
	}
	if strings.Contains(g.String(), "■") {
		t.Errorf("Expected hidden grid not to show ship glyphs:\n%s", g)
	}

	g.SetHidden(false)
	if g.Render()[0][1] != models.Occupied {
		t.Errorf("Expected vessel cell to render occupied")
	}
	if !strings.Contains(g.String(), "■") || !strings.Contains(g.String(), "X") {
		t.Errorf("Expected ship and hit glyphs:\n%s", g)
	}
}
