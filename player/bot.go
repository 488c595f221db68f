package player

import (
	"context"
	"math/rand"

	"github.com/wojtekolesinski/seabattle/models"
)

// Bot fires at uniformly random cells. It keeps no memory of earlier shots,
// so it may pick a resolved cell and get asked again.
type Bot struct {
	rng  *rand.Rand
	size int
}

func NewBot(rng *rand.Rand, size int) *Bot {
	return &Bot{rng: rng, size: size}
}

func (b *Bot) SelectTarget(context.Context) (models.Coord, error) {
	return models.Coord{Row: b.rng.Intn(b.size), Col: b.rng.Intn(b.size)}, nil
}
