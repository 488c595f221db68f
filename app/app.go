package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/config"
	"github.com/wojtekolesinski/seabattle/match"
	"github.com/wojtekolesinski/seabattle/models"
	"github.com/wojtekolesinski/seabattle/player"
)

type App struct {
	cfg     *config.Config
	log     *log.Logger
	in      *bufio.Scanner
	out     io.Writer
	rng     *rand.Rand
	gen     *board.Generator
	session sessionStats
}

// sessionStats is kept in memory for the lifetime of the process.
type sessionStats struct {
	games     int
	wins      int
	shots     int
	hits      int
	lastMatch string
}

func New(cfg *config.Config, logger *log.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("app [New]", "seed", seed, "size", cfg.Size, "fleet", cfg.Fleet, "ui", cfg.UI)

	rng := rand.New(rand.NewSource(seed))
	return &App{
		cfg: cfg,
		log: logger,
		in:  bufio.NewScanner(in),
		out: out,
		rng: rng,
		gen: board.NewGenerator(rng, cfg.MaxAttempts, logger),
	}
}

// Run shows the menu until the player quits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.greet()

	err := a.displayMenu(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, player.ErrNoInput) || errors.Is(err, context.Canceled) {
		a.log.Info("app [Run]", "reason", err)
		return nil
	}
	return err
}

func (a *App) play(ctx context.Context) error {
	for {
		own, err := a.gen.NewGrid(ctx, a.cfg.Size, a.cfg.Fleet)
		if err != nil {
			return fmt.Errorf("app.newBoard: %w", err)
		}
		enemy, err := a.gen.NewGrid(ctx, a.cfg.Size, a.cfg.Fleet)
		if err != nil {
			return fmt.Errorf("app.newBoard: %w", err)
		}
		enemy.SetHidden(true)

		var c *match.Controller
		if a.cfg.UI == config.UIGUI {
			c, err = a.playGUI(ctx, own, enemy)
		} else {
			c, err = a.playConsole(ctx, own, enemy)
		}
		if err != nil {
			return err
		}
		a.record(c)

		again, err := a.promptPlayer("Play again?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// newMatch pits the player against the computer. announce, when set, is told
// about every target the computer picks before it is resolved.
func (a *App) newMatch(own, enemy *board.Grid, picker player.TargetPicker, announce func(models.Coord)) (*match.Controller, *player.Player, *player.Player) {
	bot := player.NewBot(a.rng, a.cfg.Size)
	var cpuPicker player.TargetPicker = bot
	if announce != nil {
		cpuPicker = player.PickerFunc(func(ctx context.Context) (models.Coord, error) {
			target, err := bot.SelectTarget(ctx)
			if err == nil {
				announce(target)
			}
			return target, err
		})
	}

	you := player.New(a.cfg.PlayerName, own, enemy, picker, a.log)
	cpu := player.New(a.cfg.OpponentName, enemy, own, cpuPicker, a.log)
	return match.New(you, cpu, a.log), you, cpu
}

func (a *App) record(c *match.Controller) {
	winner, over := c.Winner()
	if !over {
		a.log.Info("app [record]", "match", c.ID(), "result", "abandoned")
		return
	}

	st := c.Stats(match.PlayerSide)
	a.session.games++
	if winner == match.PlayerSide {
		a.session.wins++
	}
	a.session.shots += st.Shots
	a.session.hits += st.Hits
	a.session.lastMatch = c.ID()
	a.log.Info("app [record]", "match", c.ID(), "winner", c.Combatant(winner).Name(), "turns", c.Turns())
}
