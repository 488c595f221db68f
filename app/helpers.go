package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/models"
)

var (
	errTwoCoords = errors.New("enter 2 coordinates")
	errNumbers   = errors.New("enter numbers")
)

// readLine returns the next input line, or io.EOF once input is exhausted.
func (a *App) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func promptList[T any](a *App, list []T, start int, mapper func(T) string) (int, error) {
	for i, el := range list {
		fmt.Fprintf(a.out, "(%d)\t%s\n", start+i, mapper(el))
	}

	for {
		fmt.Fprint(a.out, "Your choice: ")
		res, err := a.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(res)
		if err != nil {
			a.log.Debug("app [promptList]", "err", err, "res", res)
			continue
		}

		if choice >= start && choice < len(list)+start {
			return choice, nil
		}
	}
}

func (a *App) promptPlayer(prompt string) (bool, error) {
	for {
		fmt.Fprintf(a.out, "%s (y/n): ", prompt)
		res, err := a.readLine()
		if err != nil {
			return false, err
		}
		if res == "y" {
			return true, nil
		} else if res == "n" {
			return false, nil
		}
	}
}

// parseTarget reads "row col", both 1-based.
func parseTarget(line string) (models.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return models.Coord{}, errTwoCoords
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Coord{}, errNumbers
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return models.Coord{}, errNumbers
	}
	return models.Coord{Row: x - 1, Col: y - 1}, nil
}

// parseCoords reads GUI coordinates like "B7": the letter is the column and
// the number the 1-based row.
func parseCoords(coords string) (models.Coord, error) {
	if len(coords) < 2 {
		return models.Coord{}, fmt.Errorf("invalid coordinates %q", coords)
	}
	x := int(coords[0] - 'A')
	y, err := strconv.Atoi(coords[1:])
	if err != nil {
		return models.Coord{}, err
	}
	return models.Coord{Row: y - 1, Col: x}, nil
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		return "You are trying to shoot outside of the board!"
	case errors.Is(err, board.ErrAlreadyResolved):
		return "You have already shot at this cell!"
	default:
		return err.Error()
	}
}

func outcomeMessage(o models.Outcome) string {
	switch o {
	case models.Sunk:
		return "Ship destroyed!"
	case models.Hit:
		return "Ship hit!"
	default:
		return "Miss!"
	}
}
