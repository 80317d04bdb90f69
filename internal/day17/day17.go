// Package day17 steers crucibles through the city: minimal heat loss
// under straight-run constraints.
package day17

import (
	"strings"

	"advent/internal/solve"
)

// City is the grid of per-block heat losses.
type City struct {
	blocks [][]int
}

// New returns the crucible puzzle: part one limits runs to 3 straight
// blocks, part two rides ultra crucibles that go 4 to 10 blocks
// between turns.
func New() *solve.Day[City] {
	return &solve.Day[City]{
		Name:  "day17",
		Parse: parse,
		One: solve.Part[City]{Label: "Crucible", Solve: func(c City) solve.Answer {
			return c.MinHeatLoss(3, 0)
		}},
		Two: solve.Part[City]{Label: "Ultra crucible", Solve: func(c City) solve.Answer {
			return c.MinHeatLoss(10, 4)
		}},
	}
}

func parse(input string) (City, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return City{}, solve.Malformedf(0, "expected a grid")
	}
	blocks := make([][]int, len(lines))
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return City{}, solve.Malformedf(r+1, "ragged grid: row is %d wide, expected %d", len(line), len(lines[0]))
		}
		blocks[r] = make([]int, len(line))
		for c := 0; c < len(line); c++ {
			if line[c] < '1' || line[c] > '9' {
				return City{}, solve.Malformedf(r+1, "heat loss %q at column %d is not a digit", line[c], c+1)
			}
			blocks[r][c] = int(line[c] - '0')
		}
	}
	return City{blocks: blocks}, nil
}
