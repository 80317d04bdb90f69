// Package day07 plays Camel Cards: rank five-card hands, then sum
// rank times bid over the sorted game.
package day07

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Card strength. Joker sits below everything else.
const (
	joker = 0
	jack  = 11
	queen = 12
	king  = 13
	ace   = 14
)

// HandType orders hands from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards [5]int
	Bid   int
}

// Type ranks the hand, with jokers counting as whichever card makes
// the hand strongest.
func (h Hand) Type() HandType {
	counts := make(map[int]int, 5)
	jokers := 0
	for _, c := range h.Cards {
		if c == joker {
			jokers++
			continue
		}
		counts[c]++
	}
	best, second := 0, 0
	for _, n := range counts {
		switch {
		case n > best:
			best, second = n, best
		case n > second:
			second = n
		}
	}
	best += jokers
	switch {
	case best == 5:
		return FiveOfAKind
	case best == 4:
		return FourOfAKind
	case best == 3 && second == 2:
		return FullHouse
	case best == 3:
		return ThreeOfAKind
	case best == 2 && second == 2:
		return TwoPair
	case best == 2:
		return OnePair
	default:
		return HighCard
	}
}

// less orders hands by type, then card by card left to right.
func (h Hand) less(other Hand) bool {
	ht, ot := h.Type(), other.Type()
	if ht != ot {
		return ht < ot
	}
	for i := range h.Cards {
		if h.Cards[i] != other.Cards[i] {
			return h.Cards[i] < other.Cards[i]
		}
	}
	return false
}

// Winnings sorts the hands and sums rank times bid.
func Winnings(hands []Hand) int {
	sorted := make([]Hand, len(hands))
	copy(sorted, hands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].less(sorted[j]) })
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

// New returns the Camel Cards puzzle: part two replays the game with
// every J read as a joker.
func New() *solve.Day[[]string] {
	return &solve.Day[[]string]{
		Name: "day07",
		Parse: func(input string) ([]string, error) {
			lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
			if len(lines) == 1 && lines[0] == "" {
				return nil, solve.Malformedf(0, "expected at least one hand")
			}
			// Validate once up front so both parts can re-read the
			// lines with their own card values.
			if _, err := parseHands(lines, false); err != nil {
				return nil, err
			}
			return lines, nil
		},
		One: solve.Part[[]string]{Label: "Winnings", Solve: func(lines []string) solve.Answer {
			hands, _ := parseHands(lines, false)
			return Winnings(hands)
		}},
		Two: solve.Part[[]string]{Label: "Winnings with jokers", Solve: func(lines []string) solve.Answer {
			hands, _ := parseHands(lines, true)
			return Winnings(hands)
		}},
	}
}

func parseHands(lines []string, jokers bool) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		h, err := parseHand(line, jokers)
		if err != nil {
			return nil, solve.Malformedf(i+1, "%v", err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func parseHand(line string, jokers bool) (Hand, error) {
	cardsText, bidText, ok := strings.Cut(line, " ")
	if !ok {
		return Hand{}, fmt.Errorf("expected cards and a bid")
	}
	if len(cardsText) != 5 {
		return Hand{}, fmt.Errorf("expected 5 cards, found %d", len(cardsText))
	}
	var h Hand
	for i := 0; i < 5; i++ {
		v, err := cardValue(cardsText[i], jokers)
		if err != nil {
			return Hand{}, err
		}
		h.Cards[i] = v
	}
	bid, err := strconv.Atoi(bidText)
	if err != nil {
		return Hand{}, fmt.Errorf("bad bid %q", bidText)
	}
	h.Bid = bid
	return h, nil
}

func cardValue(c byte, jokers bool) (int, error) {
	switch {
	case c >= '2' && c <= '9':
		return int(c - '0'), nil
	case c == 'T':
		return 10, nil
	case c == 'J':
		if jokers {
			return joker, nil
		}
		return jack, nil
	case c == 'Q':
		return queen, nil
	case c == 'K':
		return king, nil
	case c == 'A':
		return ace, nil
	default:
		return 0, fmt.Errorf("unknown card %q", c)
	}
}
