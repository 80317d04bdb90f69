// Package day03 reads the engine schematic: a grid of digits, symbols
// and blanks where numbers count when adjacent to a symbol.
package day03

import (
	"strings"

	"advent/internal/solve"
)

// Schematic is the raw grid, one row per line.
type Schematic struct {
	rows []string
}

// number is a horizontal run of digits and where it sits.
type number struct {
	value int
	row   int
	start int // first column, inclusive
	end   int // last column, inclusive
}

// New returns the gear schematic puzzle: part one sums every number
// adjacent to a symbol, part two sums the ratios of gears ('*' symbols
// touching exactly two numbers).
func New() *solve.Day[Schematic] {
	return &solve.Day[Schematic]{
		Name:  "day03",
		Parse: parse,
		One: solve.Part[Schematic]{Label: "Part numbers sum", Solve: func(s Schematic) solve.Answer {
			total := 0
			for _, n := range s.numbers() {
				if s.hasSymbolAround(n) {
					total += n.value
				}
			}
			return total
		}},
		Two: solve.Part[Schematic]{Label: "Gear ratios sum", Solve: func(s Schematic) solve.Answer {
			return s.gearRatios()
		}},
	}
}

func parse(input string) (Schematic, error) {
	rows := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(rows) == 1 && rows[0] == "" {
		return Schematic{}, solve.Malformedf(0, "expected a grid")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return Schematic{}, solve.Malformedf(i+1, "ragged grid: row is %d wide, expected %d", len(row), width)
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '0' && c <= '9' || c == '.' {
				continue
			}
			if c < '!' || c > '~' {
				return Schematic{}, solve.Malformedf(i+1, "unexpected byte %q at column %d", c, j+1)
			}
		}
	}
	return Schematic{rows: rows}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isSymbol reports whether c marks a part: anything that is neither a
// digit nor a blank.
func isSymbol(c byte) bool { return !isDigit(c) && c != '.' }

func (s Schematic) numbers() []number {
	var out []number
	for r, row := range s.rows {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			start := c
			value := 0
			for c < len(row) && isDigit(row[c]) {
				value = value*10 + int(row[c]-'0')
				c++
			}
			out = append(out, number{value: value, row: r, start: start, end: c - 1})
		}
	}
	return out
}

// hasSymbolAround scans the halo of cells surrounding n.
func (s Schematic) hasSymbolAround(n number) bool {
	for r := n.row - 1; r <= n.row+1; r++ {
		if r < 0 || r >= len(s.rows) {
			continue
		}
		for c := n.start - 1; c <= n.end+1; c++ {
			if c < 0 || c >= len(s.rows[r]) {
				continue
			}
			if isSymbol(s.rows[r][c]) {
				return true
			}
		}
	}
	return false
}

func (n number) touches(r, c int) bool {
	return r >= n.row-1 && r <= n.row+1 && c >= n.start-1 && c <= n.end+1
}

func (s Schematic) gearRatios() int {
	numbers := s.numbers()
	total := 0
	for r, row := range s.rows {
		for c := 0; c < len(row); c++ {
			if row[c] != '*' {
				continue
			}
			product, count := 1, 0
			for _, n := range numbers {
				if n.touches(r, c) {
					product *= n.value
					count++
				}
			}
			if count == 2 {
				total += product
			}
		}
	}
	return total
}
