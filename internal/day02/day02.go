// Package day02 analyses the cube game: each game is a series of
// draws of red, green and blue cubes from a bag.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Draw is one reveal of cubes from the bag.
type Draw struct {
	Red, Green, Blue int
}

// Game is a numbered game and every draw it showed.
type Game struct {
	ID    int
	Draws []Draw
}

// New returns the cube game puzzle: part one sums the IDs of games
// possible with 12 red, 13 green and 14 blue cubes; part two sums the
// power of the minimal bag for each game.
func New() *solve.Day[[]Game] {
	return &solve.Day[[]Game]{
		Name:  "day02",
		Parse: parse,
		One: solve.Part[[]Game]{Label: "Possible games", Solve: func(games []Game) solve.Answer {
			total := 0
			for _, g := range games {
				if g.possibleWith(Draw{Red: 12, Green: 13, Blue: 14}) {
					total += g.ID
				}
			}
			return total
		}},
		Two: solve.Part[[]Game]{Label: "Power", Solve: func(games []Game) solve.Answer {
			total := 0
			for _, g := range games {
				m := g.minimalBag()
				total += m.Red * m.Green * m.Blue
			}
			return total
		}},
	}
}

func (g Game) possibleWith(bag Draw) bool {
	for _, d := range g.Draws {
		if d.Red > bag.Red || d.Green > bag.Green || d.Blue > bag.Blue {
			return false
		}
	}
	return true
}

func (g Game) minimalBag() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

func parse(input string) ([]Game, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, solve.Malformedf(0, "expected at least one game")
	}
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, solve.Malformedf(i+1, "%v", err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	header, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("missing game header")
	}
	idText, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("expected Game prefix")
	}
	id, err := strconv.Atoi(idText)
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q", idText)
	}
	g := Game{ID: id}
	for _, drawText := range strings.Split(rest, "; ") {
		var d Draw
		for _, count := range strings.Split(drawText, ", ") {
			numText, colour, ok := strings.Cut(count, " ")
			if !ok {
				return Game{}, fmt.Errorf("bad cube count %q", count)
			}
			n, err := strconv.Atoi(numText)
			if err != nil {
				return Game{}, fmt.Errorf("bad cube count %q", count)
			}
			switch colour {
			case "red":
				d.Red = n
			case "green":
				d.Green = n
			case "blue":
				d.Blue = n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", colour)
			}
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}
