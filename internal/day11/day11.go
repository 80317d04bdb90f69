// Package day11 sums distances between galaxies in an expanding
// starfield: empty rows and columns count as many.
package day11

import (
	"sort"
	"strings"

	"advent/internal/solve"
)

// Starfield holds each galaxy position as separate row and column
// lists. Manhattan distance splits per axis, so the axes never need to
// be recombined.
type Starfield struct {
	Rows []int // sorted
	Cols []int // sorted
}

// New returns the cosmic expansion puzzle: sum of pairwise distances
// with every empty row and column doubled (part one) or replaced by a
// million (part two).
func New() *solve.Day[Starfield] {
	return &solve.Day[Starfield]{
		Name:  "day11",
		Parse: parse,
		One: solve.Part[Starfield]{Label: "Expand by 2", Solve: func(s Starfield) solve.Answer {
			return s.SumDistances(2)
		}},
		Two: solve.Part[Starfield]{Label: "Expand by a million", Solve: func(s Starfield) solve.Answer {
			return s.SumDistances(1_000_000)
		}},
	}
}

// SumDistances sums Manhattan distances over all galaxy pairs after
// expanding every empty row and column to factor copies.
func (s Starfield) SumDistances(factor int) int {
	return axisSum(expand(s.Rows, factor)) + axisSum(expand(s.Cols, factor))
}

// expand maps each sorted coordinate to its position once empty gaps
// grow: a coordinate preceded by k occupied lines keeps k unexpanded
// lines behind it and gains factor-1 copies of every empty one.
func expand(coords []int, factor int) []int {
	out := make([]int, len(coords))
	occupiedBefore := 0
	prev := -1
	for i, c := range coords {
		if c != prev {
			occupiedBefore++
			prev = c
		}
		empty := c - (occupiedBefore - 1)
		out[i] = c + empty*(factor-1)
	}
	return out
}

// axisSum computes the sum of |a-b| over all pairs of a sorted list:
// each coordinate at index i is added i times and subtracted n-1-i
// times.
func axisSum(sorted []int) int {
	n := len(sorted)
	total := 0
	for i, c := range sorted {
		total += c * (2*i - (n - 1))
	}
	return total
}

func parse(input string) (Starfield, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return Starfield{}, solve.Malformedf(0, "expected a grid")
	}
	var s Starfield
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return Starfield{}, solve.Malformedf(r+1, "ragged grid: row is %d wide, expected %d", len(line), len(lines[0]))
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.':
			case '#':
				s.Rows = append(s.Rows, r)
				s.Cols = append(s.Cols, c)
			default:
				return Starfield{}, solve.Malformedf(r+1, "unknown tile %q at column %d", line[c], c+1)
			}
		}
	}
	sort.Ints(s.Cols) // rows come out sorted already
	return s, nil
}
