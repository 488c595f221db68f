package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/models"
)

// TargetPicker chooses where to fire next.
type TargetPicker interface {
	SelectTarget(ctx context.Context) (models.Coord, error)
}

// PickerFunc adapts a function to TargetPicker.
type PickerFunc func(ctx context.Context) (models.Coord, error)

func (f PickerFunc) SelectTarget(ctx context.Context) (models.Coord, error) {
	return f(ctx)
}

// Combatant is one side of a match.
type Combatant interface {
	Name() string
	Board() *board.Grid
	Move(ctx context.Context) (Shot, error)
}

type Shot struct {
	Shooter string
	Target  models.Coord
	Outcome models.Outcome
	// Err is set only for rejected targets passed to OnReject.
	Err error
}

// Player fires at the enemy grid with targets from its picker. It does not
// own either grid.
type Player struct {
	name     string
	own      *board.Grid
	enemy    *board.Grid
	picker   TargetPicker
	log      *log.Logger
	onReject func(Shot)
}

var _ Combatant = (*Player)(nil)

func New(name string, own, enemy *board.Grid, picker TargetPicker, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		name:   name,
		own:    own,
		enemy:  enemy,
		picker: picker,
		log:    logger.With("player", name),
	}
}

func (p *Player) Name() string          { return p.name }
func (p *Player) Board() *board.Grid    { return p.own }
func (p *Player) Enemy() *board.Grid    { return p.enemy }
func (p *Player) OnReject(f func(Shot)) { p.onReject = f }

// Move selects targets until one resolves. Targets outside the enemy grid or
// already resolved are reported and the player picks again; the turn does not
// pass. Only a failing picker ends the move with an error.
func (p *Player) Move(ctx context.Context) (Shot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Shot{}, err
		}

		target, err := p.picker.SelectTarget(ctx)
		if err != nil {
			return Shot{}, fmt.Errorf("player.Move: %w", err)
		}

		outcome, err := p.enemy.ResolveShot(target)
		if err == nil {
			p.log.Debug("player [Move]", "target", target, "outcome", outcome)
			return Shot{Shooter: p.name, Target: target, Outcome: outcome}, nil
		}

		if !errors.Is(err, board.ErrOutOfBounds) && !errors.Is(err, board.ErrAlreadyResolved) {
			return Shot{}, fmt.Errorf("player.Move: %w", err)
		}
		p.log.Debug("player [Move]", "target", target, "err", err)
		if p.onReject != nil {
			p.onReject(Shot{Shooter: p.name, Target: target, Err: err})
		}
	}
}
