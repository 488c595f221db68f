package match

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wojtekolesinski/seabattle/models"
	"github.com/wojtekolesinski/seabattle/player"
)

type Side int

const (
	PlayerSide Side = iota
	OpponentSide
)

func (s Side) other() Side { return 1 - s }

func (s Side) String() string {
	if s == OpponentSide {
		return "opponent"
	}
	return "player"
}

type State int

const (
	AwaitingPlayerMove State = iota
	AwaitingOpponentMove
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingPlayerMove:
		return "awaiting player move"
	case AwaitingOpponentMove:
		return "awaiting opponent move"
	default:
		return "game over"
	}
}

func awaiting(s Side) State {
	if s == OpponentSide {
		return AwaitingOpponentMove
	}
	return AwaitingPlayerMove
}

// Turn describes one resolved move.
type Turn struct {
	Number int
	Side   Side
	Shot   player.Shot
	// Next is the side to move after this turn, or the winner once Over is set.
	Next   Side
	Over   bool
	Winner Side
}

// Controller runs a match between two combatants. The player side moves
// first; a hit or a sunk vessel keeps the move, a miss passes it.
type Controller struct {
	id     string
	sides  [2]player.Combatant
	state  State
	winner Side
	turns  int
	stats  [2]models.Stats
	onTurn func(Turn)
	log    *log.Logger
}

func New(p, opponent player.Combatant, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()[:6]
	return &Controller{
		id:    id,
		sides: [2]player.Combatant{p, opponent},
		state: AwaitingPlayerMove,
		log:   logger.With("match", id),
	}
}

func (c *Controller) ID() string                        { return c.id }
func (c *Controller) State() State                      { return c.state }
func (c *Controller) Turns() int                        { return c.turns }
func (c *Controller) Stats(s Side) models.Stats         { return c.stats[s] }
func (c *Controller) Combatant(s Side) player.Combatant { return c.sides[s] }

// OnTurn registers a callback run after every resolved turn.
func (c *Controller) OnTurn(f func(Turn)) { c.onTurn = f }

// Active returns the side to move, or the winner once the game is over.
func (c *Controller) Active() Side {
	switch c.state {
	case AwaitingOpponentMove:
		return OpponentSide
	case GameOver:
		return c.winner
	default:
		return PlayerSide
	}
}

func (c *Controller) Winner() (Side, bool) {
	return c.winner, c.state == GameOver
}

// Step lets the active side take one turn. Once the game is over Step keeps
// reporting the winner without moving.
func (c *Controller) Step(ctx context.Context) (Turn, error) {
	if c.state == GameOver {
		return Turn{Number: c.turns, Side: c.winner, Next: c.winner, Over: true, Winner: c.winner}, nil
	}

	mover := c.Active()
	shot, err := c.sides[mover].Move(ctx)
	if err != nil {
		return Turn{}, fmt.Errorf("match.Step %s: %w", mover, err)
	}

	c.turns++
	st := &c.stats[mover]
	st.Shots++
	if shot.Outcome.Repeat() {
		st.Hits++
	}
	if shot.Outcome == models.Sunk {
		st.Sunk++
	}

	switch {
	case c.sides[mover.other()].Board().IsDefeated():
		c.finish(mover)
	case c.sides[mover].Board().IsDefeated():
		c.finish(mover.other())
	case !shot.Outcome.Repeat():
		c.state = awaiting(mover.other())
	}

	t := Turn{
		Number: c.turns,
		Side:   mover,
		Shot:   shot,
		Next:   c.Active(),
		Over:   c.state == GameOver,
		Winner: c.winner,
	}
	c.log.Debug("match [Step]", "turn", t.Number, "side", mover, "target", shot.Target, "outcome", shot.Outcome, "next", t.Next)
	if c.onTurn != nil {
		c.onTurn(t)
	}
	return t, nil
}

func (c *Controller) finish(winner Side) {
	c.state = GameOver
	c.winner = winner
	c.log.Info("match [finish]", "winner", c.sides[winner].Name(), "turns", c.turns)
}

// Run steps until one side wins.
func (c *Controller) Run(ctx context.Context) (Side, error) {
	for {
		t, err := c.Step(ctx)
		if err != nil {
			return 0, err
		}
		if t.Over {
			return t.Winner, nil
		}
	}
}
