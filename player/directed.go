package player

import (
	"context"
	"errors"

	"github.com/wojtekolesinski/seabattle/models"
)

var ErrNoInput = errors.New("target source closed")

// Directed takes targets from an outside source, e.g. clicks on a board.
// Targets are used in the order they arrive.
type Directed struct {
	targets <-chan models.Coord
}

func NewDirected(targets <-chan models.Coord) *Directed {
	return &Directed{targets: targets}
}

func (d *Directed) SelectTarget(ctx context.Context) (models.Coord, error) {
	select {
	case <-ctx.Done():
		return models.Coord{}, ctx.Err()
	case c, ok := <-d.targets:
		if !ok {
			return models.Coord{}, ErrNoInput
		}
		return c, nil
	}
}
