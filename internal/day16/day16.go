// Package day16 traces light beams through the mirror cave and counts
// energized tiles.
package day16

import (
	"strings"

	"advent/internal/solve"
)

type direction int

const (
	up direction = iota
	down
	left
	right
)

// Beam is a light front entering a tile while travelling towards d.
type Beam struct {
	Row int
	Col int
	Dir direction
}

// Cave is the grid of optics: '.', '/', '\', '-' and '|'.
type Cave struct {
	rows []string
}

// New returns the beam cave puzzle: part one counts tiles energized
// by a beam entering top-left heading right, part two maximizes over
// every edge entry.
func New() *solve.Day[Cave] {
	return &solve.Day[Cave]{
		Name:  "day16",
		Parse: parse,
		One: solve.Part[Cave]{Label: "From top left", Solve: func(c Cave) solve.Answer {
			return c.Energized(Beam{Row: 0, Col: 0, Dir: right})
		}},
		Two: solve.Part[Cave]{Label: "Most lit", Solve: func(c Cave) solve.Answer {
			return c.MostEnergized()
		}},
	}
}

// exits maps a beam's travel direction through the optic it hits.
func exits(tile byte, d direction) []direction {
	switch tile {
	case '/':
		switch d {
		case up:
			return []direction{right}
		case down:
			return []direction{left}
		case left:
			return []direction{down}
		default:
			return []direction{up}
		}
	case '\\':
		switch d {
		case up:
			return []direction{left}
		case down:
			return []direction{right}
		case left:
			return []direction{up}
		default:
			return []direction{down}
		}
	case '-':
		if d == up || d == down {
			return []direction{left, right}
		}
	case '|':
		if d == left || d == right {
			return []direction{up, down}
		}
	}
	return []direction{d}
}

func (b Beam) step(d direction) Beam {
	switch d {
	case up:
		return Beam{b.Row - 1, b.Col, d}
	case down:
		return Beam{b.Row + 1, b.Col, d}
	case left:
		return Beam{b.Row, b.Col - 1, d}
	default:
		return Beam{b.Row, b.Col + 1, d}
	}
}

// Energized counts the tiles at least one beam passes through,
// starting from the given entry. Splitters fork the beam, so the walk
// keeps an explicit stack and drops fronts it has already followed.
func (c Cave) Energized(start Beam) int {
	seen := make(map[Beam]struct{})
	lit := make(map[[2]int]struct{})
	stack := []Beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Row < 0 || b.Row >= len(c.rows) || b.Col < 0 || b.Col >= len(c.rows[b.Row]) {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		lit[[2]int{b.Row, b.Col}] = struct{}{}
		for _, d := range exits(c.rows[b.Row][b.Col], b.Dir) {
			stack = append(stack, b.step(d))
		}
	}
	return len(lit)
}

// MostEnergized tries a beam from every edge tile pointing inwards.
func (c Cave) MostEnergized() int {
	best := 0
	try := func(b Beam) {
		if n := c.Energized(b); n > best {
			best = n
		}
	}
	for r := range c.rows {
		try(Beam{Row: r, Col: 0, Dir: right})
		try(Beam{Row: r, Col: len(c.rows[r]) - 1, Dir: left})
	}
	for col := 0; col < len(c.rows[0]); col++ {
		try(Beam{Row: 0, Col: col, Dir: down})
		try(Beam{Row: len(c.rows) - 1, Col: col, Dir: up})
	}
	return best
}

func parse(input string) (Cave, error) {
	rows := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(rows) == 1 && rows[0] == "" {
		return Cave{}, solve.Malformedf(0, "expected a grid")
	}
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return Cave{}, solve.Malformedf(r+1, "ragged grid: row is %d wide, expected %d", len(row), len(rows[0]))
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '.', '/', '\\', '-', '|':
			default:
				return Cave{}, solve.Malformedf(r+1, "unknown optic %q at column %d", row[i], i+1)
			}
		}
	}
	return Cave{rows: rows}, nil
}
