// Package day13 finds the mirror line in each ash-and-rock pattern,
// then finds where it moves once a single smudge is fixed.
package day13

import (
	"strings"

	"advent/internal/solve"
)

// Pattern is one grid of '.' and '#'.
type Pattern struct {
	rows []string
}

// New returns the mirror valley puzzle: each pattern scores columns
// left of a vertical mirror, or 100 times the rows above a horizontal
// one. Part two rescores after flipping the one cell that yields a
// different mirror.
func New() *solve.Day[[]Pattern] {
	return &solve.Day[[]Pattern]{
		Name:  "day13",
		Parse: parse,
		One: solve.Part[[]Pattern]{Label: "Mirrors", Solve: func(patterns []Pattern) solve.Answer {
			total := 0
			for _, p := range patterns {
				total += p.Score(0)
			}
			return total
		}},
		Two: solve.Part[[]Pattern]{Label: "Mirrors without smudge", Solve: func(patterns []Pattern) solve.Answer {
			total := 0
			for _, p := range patterns {
				total += p.SmudgedScore()
			}
			return total
		}},
	}
}

// mirrorsAt reports whether rows fold onto each other around the line
// above index i.
func (p Pattern) mirrorsAt(i int) bool {
	for a, b := i-1, i; a >= 0 && b < len(p.rows); a, b = a-1, b+1 {
		if p.rows[a] != p.rows[b] {
			return false
		}
	}
	return true
}

func (p Pattern) column(c int) string {
	var b strings.Builder
	for _, row := range p.rows {
		b.WriteByte(row[c])
	}
	return b.String()
}

func (p Pattern) transposed() Pattern {
	cols := make([]string, len(p.rows[0]))
	for c := range cols {
		cols[c] = p.column(c)
	}
	return Pattern{rows: cols}
}

// Score finds the pattern's mirror line, skipping the line that
// scores skip. Horizontal lines score 100 per row above, vertical
// ones 1 per column left. Returns 0 when no mirror remains.
func (p Pattern) Score(skip int) int {
	for i := 1; i < len(p.rows); i++ {
		if score := 100 * i; score != skip && p.mirrorsAt(i) {
			return score
		}
	}
	t := p.transposed()
	for i := 1; i < len(t.rows); i++ {
		if i != skip && t.mirrorsAt(i) {
			return i
		}
	}
	return 0
}

// SmudgedScore flips each cell in turn until the pattern gains a
// mirror line different from its original one.
func (p Pattern) SmudgedScore() int {
	original := p.Score(0)
	for r, row := range p.rows {
		for c := 0; c < len(row); c++ {
			flipped := p.flip(r, c)
			if score := flipped.Score(original); score != 0 {
				return score
			}
		}
	}
	return 0
}

func (p Pattern) flip(r, c int) Pattern {
	rows := make([]string, len(p.rows))
	copy(rows, p.rows)
	cell := byte('#')
	if rows[r][c] == '#' {
		cell = '.'
	}
	rows[r] = rows[r][:c] + string(cell) + rows[r][c+1:]
	return Pattern{rows: rows}
}

func parse(input string) ([]Pattern, error) {
	blocks := strings.Split(strings.TrimRight(input, "\n"), "\n\n")
	if len(blocks) == 1 && blocks[0] == "" {
		return nil, solve.Malformedf(0, "expected at least one pattern")
	}
	patterns := make([]Pattern, 0, len(blocks))
	line := 1
	for _, block := range blocks {
		rows := strings.Split(block, "\n")
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				return nil, solve.Malformedf(line+i, "ragged pattern: row is %d wide, expected %d", len(row), len(rows[0]))
			}
			for c := 0; c < len(row); c++ {
				if row[c] != '.' && row[c] != '#' {
					return nil, solve.Malformedf(line+i, "unknown tile %q at column %d", row[c], c+1)
				}
			}
		}
		patterns = append(patterns, Pattern{rows: rows})
		line += len(rows) + 1
	}
	return patterns, nil
}
