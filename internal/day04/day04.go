// Package day04 scores scratchcards: each card lists winning numbers
// and the numbers you have.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Card is one scratchcard.
type Card struct {
	Winning []int
	Have    []int
}

// Matches counts how many of the card's numbers are winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}

// New returns the scratchcard puzzle: part one scores each card as
// 2^(matches-1) points, part two counts the cards after each win
// spawns copies of the following cards.
func New() *solve.Day[[]Card] {
	return &solve.Day[[]Card]{
		Name:  "day04",
		Parse: parse,
		One: solve.Part[[]Card]{Label: "Score", Solve: func(cards []Card) solve.Answer {
			total := 0
			for _, c := range cards {
				if m := c.Matches(); m > 0 {
					total += 1 << (m - 1)
				}
			}
			return total
		}},
		Two: solve.Part[[]Card]{Label: "Cards", Solve: func(cards []Card) solve.Answer {
			copies := make([]int, len(cards))
			for i := range copies {
				copies[i] = 1
			}
			for i, c := range cards {
				for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
					copies[j] += copies[i]
				}
			}
			total := 0
			for _, n := range copies {
				total += n
			}
			return total
		}},
	}
}

func parse(input string) ([]Card, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, solve.Malformedf(0, "expected at least one card")
	}
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return nil, solve.Malformedf(i+1, "%v", err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(line string) (Card, error) {
	_, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Card{}, fmt.Errorf("missing card header")
	}
	winningText, haveText, ok := strings.Cut(rest, " | ")
	if !ok {
		return Card{}, fmt.Errorf("missing number separator")
	}
	winning, err := parseNumbers(winningText)
	if err != nil {
		return Card{}, err
	}
	have, err := parseNumbers(haveText)
	if err != nil {
		return Card{}, err
	}
	return Card{Winning: winning, Have: have}, nil
}

func parseNumbers(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
