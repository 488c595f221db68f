package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gui "github.com/grupawp/warships-gui/v2"
	"github.com/mitchellh/go-wordwrap"
	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/match"
	"github.com/wojtekolesinski/seabattle/models"
	"github.com/wojtekolesinski/seabattle/player"
)

// Screen positions of the GUI widgets, in terminal cells.
const (
	ownBoardX   = 2
	enemyBoardX = 60
	boardY      = 6
	sideX       = 48
	captionY    = 28
	captionWrap = 40
)

// ui holds the widgets of one match screen. The player's fleet is on the
// left and the opponent's waters, which take the clicks, on the right.
type ui struct {
	gui      *gui.GUI
	own      *gui.Board
	enemy    *gui.Board
	status   *gui.Text
	hint     *gui.Text
	turn     *gui.Text
	accuracy *gui.Text
}

func newUi() *ui {
	turnStyle := &gui.TextConfig{FgColor: gui.Black, BgColor: gui.NewColor(90, 200, 250)}
	accuracyStyle := &gui.TextConfig{FgColor: gui.White, BgColor: gui.Black}

	u := &ui{
		gui:      gui.NewGUI(true),
		own:      gui.NewBoard(ownBoardX, boardY, nil),
		enemy:    gui.NewBoard(enemyBoardX, boardY, nil),
		hint:     gui.NewText(ownBoardX, 2, "Press Ctrl+C to leave the game", nil),
		status:   gui.NewText(ownBoardX, 4, "", nil),
		turn:     gui.NewText(sideX+2, boardY+9, "", turnStyle),
		accuracy: gui.NewText(sideX+2, boardY+14, "", accuracyStyle),
	}
	u.gui.Draw(u.own)
	u.gui.Draw(u.enemy)
	u.gui.Draw(u.hint)
	u.gui.Draw(u.status)
	u.gui.Draw(u.turn)
	u.gui.Draw(gui.NewText(sideX, boardY+13, "Accuracy:", nil))
	u.gui.Draw(u.accuracy)
	u.setAccuracy(models.Stats{})
	return u
}

// caption draws text wrapped into lines under the board at x.
func (u *ui) caption(x int, text string) {
	for i, line := range strings.Split(wordwrap.WrapString(text, captionWrap), "\n") {
		u.gui.Draw(gui.NewText(x, captionY+i, line, nil))
	}
}

func (u *ui) render(own, enemy *board.Grid) {
	u.own.SetStates(toStates(own.Render()))
	u.enemy.SetStates(toStates(enemy.Render()))
}

func (u *ui) setStatus(text string) {
	u.status.SetText(text)
}

func (u *ui) setTurn(name string) {
	u.turn.SetText(fmt.Sprintf(" %s to move ", name))
}

func (u *ui) setAccuracy(st models.Stats) {
	u.accuracy.SetText(fmt.Sprintf("%.2f%% (%d/%d)", st.Accuracy(), st.Hits, st.Shots))
}

// showResult colours the status line by the result and swaps the hint.
func (u *ui) showResult(won bool) {
	bg, text := gui.Red, "You lose"
	if won {
		bg, text = gui.Green, "You win"
	}
	u.status.SetFgColor(gui.White)
	u.status.SetBgColor(bg)
	u.setStatus(text)
	u.hint.SetText("Press Ctrl+C to go back to the menu")
}

var guiStates = map[models.Cell]gui.State{
	models.Empty:    gui.Empty,
	models.Occupied: gui.Ship,
	models.Struck:   gui.Hit,
	models.Missed:   gui.Miss,
	models.Excluded: gui.Miss,
}

// toStates maps rendered cells onto the fixed 10x10 GUI board, which is
// indexed [column][row]. Cells beyond the grid stay empty.
func toStates(cells [][]models.Cell) [10][10]gui.State {
	var states [10][10]gui.State
	for x := range states {
		for y := range states[x] {
			states[x][y] = gui.Empty
		}
	}
	for row := range cells {
		for col, cell := range cells[row] {
			states[col][row] = guiStates[cell]
		}
	}
	return states
}

// playGUI runs one match in the terminal GUI. The player fires by clicking on
// the opponent's board. Leaving the GUI before the end abandons the match.
func (a *App) playGUI(ctx context.Context, own, enemy *board.Grid) (*match.Controller, error) {
	gctx, cancel := context.WithCancel(ctx)
	defer cancel()

	u := newUi()
	targets := make(chan models.Coord)
	c, you, _ := a.newMatch(own, enemy, player.NewDirected(targets), nil)

	u.caption(ownBoardX, a.cfg.PlayerName)
	u.caption(enemyBoardX, a.cfg.OpponentName+". "+guiHelp)
	u.render(own, enemy)
	u.setTurn(a.cfg.PlayerName)

	you.OnReject(func(s player.Shot) {
		u.setStatus(rejectMessage(s.Err))
	})
	c.OnTurn(func(t match.Turn) {
		u.render(own, enemy)
		u.setAccuracy(c.Stats(match.PlayerSide))
		u.setStatus(fmt.Sprintf("%s fires at %s: %s", c.Combatant(t.Side).Name(), t.Shot.Target, outcomeMessage(t.Shot.Outcome)))
		u.setTurn(c.Combatant(t.Next).Name())
		if t.Over {
			enemy.SetHidden(false)
			u.render(own, enemy)
			u.showResult(t.Winner == match.PlayerSide)
		}
	})

	go func() {
		for {
			coords := u.enemy.Listen(gctx)
			if gctx.Err() != nil {
				return
			}
			target, err := parseCoords(coords)
			if err != nil {
				a.log.Error("app [playGUI]", "err", err, "coords", coords)
				continue
			}
			select {
			case targets <- target:
			case <-gctx.Done():
				return
			}
		}
	}()

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(gctx)
		done <- err
	}()

	u.gui.Start(gctx, nil)
	cancel()

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return c, err
	}
	return c, ctx.Err()
}
