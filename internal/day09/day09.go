// Package day09 extrapolates oasis sensor histories by building
// difference tables until a row of zeroes appears.
package day09

import (
	"strconv"
	"strings"

	"advent/internal/solve"
)

// New returns the oasis puzzle: part one extrapolates each history one
// step forwards, part two one step backwards, both summed.
func New() *solve.Day[[][]int] {
	return &solve.Day[[][]int]{
		Name:  "day09",
		Parse: parse,
		One: solve.Part[[][]int]{Label: "Extrapolate forwards", Solve: func(histories [][]int) solve.Answer {
			total := 0
			for _, h := range histories {
				total += Forwards(h)
			}
			return total
		}},
		Two: solve.Part[[][]int]{Label: "Extrapolate backwards", Solve: func(histories [][]int) solve.Answer {
			total := 0
			for _, h := range histories {
				total += Backwards(h)
			}
			return total
		}},
	}
}

func differences(values []int) [][]int {
	table := [][]int{values}
	for {
		last := table[len(table)-1]
		if allZero(last) || len(last) < 2 {
			return table
		}
		next := make([]int, len(last)-1)
		for i := range next {
			next[i] = last[i+1] - last[i]
		}
		table = append(table, next)
	}
}

func allZero(values []int) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Forwards predicts the value after the last one.
func Forwards(history []int) int {
	next := 0
	for _, row := range differences(history) {
		next += row[len(row)-1]
	}
	return next
}

// Backwards predicts the value before the first one. Folding from the
// bottom row up alternates the sign of each first element.
func Backwards(history []int) int {
	table := differences(history)
	prev := 0
	for i := len(table) - 1; i >= 0; i-- {
		prev = table[i][0] - prev
	}
	return prev
}

func parse(input string) ([][]int, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, solve.Malformedf(0, "expected at least one history")
	}
	histories := make([][]int, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, solve.Malformedf(i+1, "empty history")
		}
		h := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, solve.Malformedf(i+1, "bad number %q", f)
			}
			h = append(h, n)
		}
		histories = append(histories, h)
	}
	return histories, nil
}
