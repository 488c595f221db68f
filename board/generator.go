package board

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/models"
)

const DefaultMaxAttempts = 2000

// DefaultFleet is the classic 6x6 fleet: one three-decker, two two-deckers
// and four single-deckers.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// Generator lays out fleets at random. It does not backtrack: when the
// attempt budget runs out the whole board is thrown away.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	log         *log.Logger
}

func NewGenerator(rng *rand.Rand, maxAttempts int, logger *log.Logger) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		rng:         rng,
		maxAttempts: maxAttempts,
		log:         logger,
	}
}

// Generate places vessels of the given lengths, in order, on a fresh grid and
// finalizes its setup. It returns ErrGenerationFailed when the attempt budget
// is spent before the last vessel is placed.
func (gen *Generator) Generate(size int, lengths []int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("board.Generate: invalid size %d", size)
	}
	for _, length := range lengths {
		if length < MinVesselLength || length > MaxVesselLength {
			return nil, fmt.Errorf("board.Generate: invalid vessel length %d", length)
		}
	}

	g := NewGrid(size, false)
	attempts := 0
	for _, length := range lengths {
		for {
			attempts++
			if attempts > gen.maxAttempts {
				return nil, fmt.Errorf("board.Generate after %d attempts: %w", gen.maxAttempts, ErrGenerationFailed)
			}

			bow := models.Coord{Row: gen.rng.Intn(size), Col: gen.rng.Intn(size)}
			v, err := NewVessel(bow, length, models.Orientation(gen.rng.Intn(2)))
			if err != nil {
				return nil, fmt.Errorf("board.Generate: %w", err)
			}

			err = g.Place(v)
			if err == nil {
				break
			}
			if !errors.Is(err, ErrInvalidPlacement) {
				return nil, fmt.Errorf("board.Generate: %w", err)
			}
		}
	}

	if err := g.FinalizeSetup(); err != nil {
		return nil, fmt.Errorf("board.Generate: %w", err)
	}
	return g, nil
}

// NewGrid keeps generating boards until one succeeds or ctx is done.
func (gen *Generator) NewGrid(ctx context.Context, size int, lengths []int) (*Grid, error) {
	for boards := 1; ; boards++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g, err := gen.Generate(size, lengths)
		if err == nil {
			gen.log.Debug("board [NewGrid]", "boards", boards)
			return g, nil
		}
		if !errors.Is(err, ErrGenerationFailed) {
			return nil, err
		}
		gen.log.Debug("board [NewGrid]", "err", err, "board", boards)
	}
}
