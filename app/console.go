package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/match"
	"github.com/wojtekolesinski/seabattle/models"
	"github.com/wojtekolesinski/seabattle/player"
)

func (a *App) playConsole(ctx context.Context, own, enemy *board.Grid) (*match.Controller, error) {
	c, you, cpu := a.newMatch(own, enemy, player.PickerFunc(a.readTarget), func(target models.Coord) {
		fmt.Fprintf(a.out, "%s fires: %s\n", a.cfg.OpponentName, target)
	})
	reject := func(s player.Shot) {
		fmt.Fprintln(a.out, rejectMessage(s.Err))
	}
	you.OnReject(reject)
	cpu.OnReject(reject)
	c.OnTurn(func(t match.Turn) {
		fmt.Fprintln(a.out, outcomeMessage(t.Shot.Outcome))
	})

	for {
		a.renderBoards(own, enemy)
		if c.Active() == match.PlayerSide {
			fmt.Fprintf(a.out, "%s moves!\n", a.cfg.PlayerName)
		} else {
			fmt.Fprintf(a.out, "%s moves!\n", a.cfg.OpponentName)
		}

		t, err := c.Step(ctx)
		if err != nil {
			return c, err
		}
		if t.Over {
			enemy.SetHidden(false)
			a.renderBoards(own, enemy)
			fmt.Fprintf(a.out, "%s won!\n", c.Combatant(t.Winner).Name())
			return c, nil
		}
	}
}

func (a *App) renderBoards(own, enemy *board.Grid) {
	fmt.Fprintln(a.out, strings.Repeat("-", 20))
	fmt.Fprintf(a.out, "%s's board:\n", a.cfg.PlayerName)
	fmt.Fprint(a.out, own)
	fmt.Fprintln(a.out, strings.Repeat("-", 20))
	fmt.Fprintf(a.out, "%s's board:\n", a.cfg.OpponentName)
	fmt.Fprint(a.out, enemy)
}

// readTarget prompts until a line holds two numbers. Whether they are on the
// board is left to the engine.
func (a *App) readTarget(context.Context) (models.Coord, error) {
	for {
		fmt.Fprint(a.out, "Your move: ")
		line, err := a.readLine()
		if err != nil {
			return models.Coord{}, err
		}
		target, err := parseTarget(line)
		if err != nil {
			fmt.Fprintf(a.out, "Try again, %s\n", err)
			continue
		}
		return target, nil
	}
}
