// Package day10 traces the pipe maze loop and measures what it
// encloses.
package day10

import (
	"strings"

	"advent/internal/solve"
)

// Coord addresses a tile by row and column.
type Coord struct {
	Row int
	Col int
}

type direction int

const (
	up direction = iota
	down
	left
	right
)

func (d direction) opposite() direction {
	switch d {
	case up:
		return down
	case down:
		return up
	case left:
		return right
	default:
		return left
	}
}

func (c Coord) move(d direction) Coord {
	switch d {
	case up:
		return Coord{c.Row - 1, c.Col}
	case down:
		return Coord{c.Row + 1, c.Col}
	case left:
		return Coord{c.Row, c.Col - 1}
	default:
		return Coord{c.Row, c.Col + 1}
	}
}

// connections lists the two exits of a pipe tile, or nil for ground.
func connections(tile byte) []direction {
	switch tile {
	case '|':
		return []direction{up, down}
	case '-':
		return []direction{left, right}
	case 'L':
		return []direction{up, right}
	case 'J':
		return []direction{up, left}
	case '7':
		return []direction{down, left}
	case 'F':
		return []direction{down, right}
	default:
		return nil
	}
}

// Maze is the tile grid with its loop already traced.
type Maze struct {
	rows  []string
	start Coord
	loop  []Coord // starts at the start tile, in walk order
}

// New returns the pipe maze puzzle: part one is the distance to the
// tile farthest along the loop, part two counts the tiles the loop
// encloses.
func New() *solve.Day[Maze] {
	return &solve.Day[Maze]{
		Name:  "day10",
		Parse: parse,
		One: solve.Part[Maze]{Label: "Steps", Solve: func(m Maze) solve.Answer {
			return len(m.loop) / 2
		}},
		Two: solve.Part[Maze]{Label: "Enclosed tiles", Solve: func(m Maze) solve.Answer {
			return m.Enclosed()
		}},
	}
}

func (m Maze) at(c Coord) byte {
	if c.Row < 0 || c.Row >= len(m.rows) || c.Col < 0 || c.Col >= len(m.rows[c.Row]) {
		return '.'
	}
	return m.rows[c.Row][c.Col]
}

// connectsTo reports whether the pipe at c has an exit towards d.
func (m Maze) connectsTo(c Coord, d direction) bool {
	for _, exit := range connections(m.at(c)) {
		if exit == d {
			return true
		}
	}
	return false
}

// traceLoop walks the loop from the start tile. The start's own pipe
// shape is unknown, so its exits are the neighbours that point back.
func (m Maze) traceLoop() ([]Coord, error) {
	var exits []direction
	for _, d := range []direction{up, down, left, right} {
		if m.connectsTo(m.start.move(d), d.opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, solve.Malformedf(m.start.Row+1, "start tile has %d connecting neighbours, expected 2", len(exits))
	}
	loop := []Coord{m.start}
	heading := exits[0]
	pos := m.start.move(heading)
	for pos != m.start {
		loop = append(loop, pos)
		came := heading.opposite()
		next := came
		for _, d := range connections(m.at(pos)) {
			if d != came {
				next = d
			}
		}
		if next == came {
			return nil, solve.Malformedf(pos.Row+1, "loop dead-ends at column %d", pos.Col+1)
		}
		heading = next
		pos = pos.move(heading)
	}
	return loop, nil
}

func parse(input string) (Maze, error) {
	rows := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(rows) == 1 && rows[0] == "" {
		return Maze{}, solve.Malformedf(0, "expected a grid")
	}
	start := Coord{-1, -1}
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return Maze{}, solve.Malformedf(r+1, "ragged grid: row is %d wide, expected %d", len(row), len(rows[0]))
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '|', '-', 'L', 'J', '7', 'F', '.':
			case 'S':
				if start.Row >= 0 {
					return Maze{}, solve.Malformedf(r+1, "second start tile at column %d", c+1)
				}
				start = Coord{r, c}
			default:
				return Maze{}, solve.Malformedf(r+1, "unknown tile %q at column %d", row[c], c+1)
			}
		}
	}
	if start.Row < 0 {
		return Maze{}, solve.Malformedf(0, "no start tile")
	}
	m := Maze{rows: rows, start: start}
	loop, err := m.traceLoop()
	if err != nil {
		return Maze{}, err
	}
	m.loop = loop
	return m, nil
}
