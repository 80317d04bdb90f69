// Package day01 recovers calibration values hidden in lines of text.
package day01

import (
	"strings"

	"advent/internal/solve"
)

var spelledDigits = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// New returns the trebuchet calibration puzzle: each line contributes a
// two-digit number built from its first and last digit, with part two
// also accepting digits spelled out as words.
func New() *solve.Day[[]string] {
	return &solve.Day[[]string]{
		Name: "day01",
		Parse: func(input string) ([]string, error) {
			lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
			if len(lines) == 1 && lines[0] == "" {
				return nil, solve.Malformedf(0, "expected at least one line")
			}
			return lines, nil
		},
		One: solve.Part[[]string]{Label: "Numeric only", Solve: func(lines []string) solve.Answer {
			return sumCalibrations(lines, false)
		}},
		Two: solve.Part[[]string]{Label: "With letters", Solve: func(lines []string) solve.Answer {
			return sumCalibrations(lines, true)
		}},
	}
}

func sumCalibrations(lines []string, withWords bool) int {
	total := 0
	for _, line := range lines {
		total += 10*firstDigit(line, withWords) + lastDigit(line, withWords)
	}
	return total
}

// digitAt reports the digit starting at offset i of line, if any.
// Spelled-out digits may overlap, so matching never consumes input.
func digitAt(line string, i int, withWords bool) (int, bool) {
	c := line[i]
	if c >= '1' && c <= '9' {
		return int(c - '0'), true
	}
	if !withWords {
		return 0, false
	}
	for word, value := range spelledDigits {
		if strings.HasPrefix(line[i:], word) {
			return value, true
		}
	}
	return 0, false
}

func firstDigit(line string, withWords bool) int {
	for i := range line {
		if d, ok := digitAt(line, i, withWords); ok {
			return d
		}
	}
	return 0
}

func lastDigit(line string, withWords bool) int {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, withWords); ok {
			return d
		}
	}
	return 0
}
