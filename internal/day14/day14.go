// Package day14 tilts the parabolic reflector dish platform and
// measures the load of the rolled rocks.
package day14

import (
	"strings"

	"advent/internal/solve"
)

const (
	empty   = '.'
	wall    = '#'
	movable = 'O'
)

// Board is the platform grid, mutated in place by tilts.
type Board struct {
	cells [][]byte
}

// New returns the reflector dish puzzle: part one tilts the platform
// north once, part two runs a billion spin cycles. Both report the
// north-beam load.
func New() *solve.Day[Board] {
	return &solve.Day[Board]{
		Name:  "day14",
		Parse: parse,
		One: solve.Part[Board]{Label: "Slide once", Solve: func(b Board) solve.Answer {
			tilted := b.Clone()
			tilted.TiltNorth()
			return tilted.Load()
		}},
		Two: solve.Part[Board]{Label: "Spin a billion", Solve: func(b Board) solve.Answer {
			spun := b.Clone()
			spun.SpinMany(1_000_000_000)
			return spun.Load()
		}},
	}
}

// Clone deep-copies the board so a solver can tilt freely.
func (b Board) Clone() Board {
	cells := make([][]byte, len(b.cells))
	for i, row := range b.cells {
		cells[i] = append([]byte(nil), row...)
	}
	return Board{cells: cells}
}

// Load sums, over every movable rock, its distance to the south edge.
func (b Board) Load() int {
	total := 0
	for r, row := range b.cells {
		for _, c := range row {
			if c == movable {
				total += len(b.cells) - r
			}
		}
	}
	return total
}

// roll moves the rock at (r, c), if any, as far as it goes along
// (dr, dc).
func (b Board) roll(r, c, dr, dc int) {
	if b.cells[r][c] != movable {
		return
	}
	nr, nc := r, c
	for {
		tr, tc := nr+dr, nc+dc
		if tr < 0 || tr >= len(b.cells) || tc < 0 || tc >= len(b.cells[tr]) || b.cells[tr][tc] != empty {
			break
		}
		nr, nc = tr, tc
	}
	if nr != r || nc != c {
		b.cells[r][c] = empty
		b.cells[nr][nc] = movable
	}
}

// TiltNorth rolls every rock as far north as it goes.
func (b Board) TiltNorth() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.roll(r, c, -1, 0)
		}
	}
}

func (b Board) tiltWest() {
	for c := 0; c < len(b.cells[0]); c++ {
		for r := range b.cells {
			b.roll(r, c, 0, -1)
		}
	}
}

func (b Board) tiltSouth() {
	for r := len(b.cells) - 1; r >= 0; r-- {
		for c := range b.cells[r] {
			b.roll(r, c, 1, 0)
		}
	}
}

func (b Board) tiltEast() {
	for c := len(b.cells[0]) - 1; c >= 0; c-- {
		for r := range b.cells {
			b.roll(r, c, 0, 1)
		}
	}
}

// Spin runs one full cycle: north, west, south, east.
func (b Board) Spin() {
	b.TiltNorth()
	b.tiltWest()
	b.tiltSouth()
	b.tiltEast()
}

// SpinMany spins n times, shortcutting as soon as the board repeats.
func (b Board) SpinMany(n int) {
	seen := make(map[string]int)
	for i := 0; i < n; i++ {
		key := b.String()
		if first, ok := seen[key]; ok {
			cycle := i - first
			remaining := (n - i) % cycle
			for j := 0; j < remaining; j++ {
				b.Spin()
			}
			return
		}
		seen[key] = i
		b.Spin()
	}
}

func (b Board) String() string {
	rows := make([]string, len(b.cells))
	for i, row := range b.cells {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

func parse(input string) (Board, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return Board{}, solve.Malformedf(0, "expected a grid")
	}
	cells := make([][]byte, len(lines))
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return Board{}, solve.Malformedf(r+1, "ragged grid: row is %d wide, expected %d", len(line), len(lines[0]))
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case empty, wall, movable:
			default:
				return Board{}, solve.Malformedf(r+1, "unknown tile %q at column %d", line[c], c+1)
			}
		}
		cells[r] = []byte(line)
	}
	return Board{cells: cells}, nil
}
