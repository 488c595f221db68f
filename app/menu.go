package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/wojtekolesinski/seabattle/config"
	"github.com/wojtekolesinski/seabattle/models"
)

const help = "Input format is x y, where x is the row number and y is the column number, both starting at 1. " +
	"Hitting a ship gives you another shot."

const guiHelp = "Click a cell on the right board to fire at it. Press Ctrl+C to leave the game."

func (a *App) greet() {
	fmt.Fprintln(a.out, "-------------------")
	fmt.Fprintln(a.out, "    Welcome to     ")
	fmt.Fprintln(a.out, "    Sea Battle     ")
	fmt.Fprintln(a.out, "-------------------")

	text := help
	if a.cfg.UI == config.UIGUI {
		text = guiHelp
	}
	fmt.Fprintln(a.out, wordwrap.WrapString(text, a.cfg.BannerWidth))
	fmt.Fprintln(a.out)
}

func (a *App) displayMenu(ctx context.Context) error {
	choices := []string{
		"Play against the computer",
		"Display session stats",
		"Quit",
	}

	for {
		choice, err := promptList(a, choices, 1, func(s string) string { return s })
		if err != nil {
			return err
		}
		a.log.Debug("app [displayMenu]", "choice", choice)

		switch choice {
		case 1:
			if err := a.play(ctx); err != nil {
				return fmt.Errorf("app.play: %w", err)
			}
		case 2:
			a.displayStats()
		case 3:
			return nil
		}
	}
}

func (a *App) displayStats() {
	s := a.session
	accuracy := models.Stats{Shots: s.shots, Hits: s.hits}.Accuracy()

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "| %-20s | %-5s | %4s | %5s | %4s | %8s |\n", "NICK", "GAMES", "WINS", "SHOTS", "HITS", "ACCURACY")
	fmt.Fprintf(a.out, "| %-20s | %5s | %4s | %5s | %4s | %7.2f%% |\n",
		a.cfg.PlayerName,
		strconv.Itoa(s.games),
		strconv.Itoa(s.wins),
		strconv.Itoa(s.shots),
		strconv.Itoa(s.hits),
		accuracy,
	)
	if s.lastMatch != "" {
		fmt.Fprintln(a.out, "Last match: "+s.lastMatch)
	}
	fmt.Fprintln(a.out, strings.Repeat("-", 20))
	fmt.Fprintln(a.out)
}
