package day07

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sampleLines(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	lines, err := New().Parse(string(data))
	require.NoError(t, err)
	return lines
}

func mustHand(t *testing.T, line string, jokers bool) Hand {
	t.Helper()
	h, err := parseHand(line, jokers)
	require.NoError(t, err)
	return h
}

func TestHandType(t *testing.T) {
	cases := []struct {
		cards string
		want  HandType
	}{
		{"AAAAA", FiveOfAKind},
		{"AA8AA", FourOfAKind},
		{"23332", FullHouse},
		{"TTT98", ThreeOfAKind},
		{"23432", TwoPair},
		{"A23A4", OnePair},
		{"23456", HighCard},
	}
	for _, c := range cases {
		h := mustHand(t, c.cards+" 1", false)
		assert.Equal(t, c.want, h.Type(), "hand %s", c.cards)
	}
}

func TestHandType_Jokers(t *testing.T) {
	cases := []struct {
		cards string
		want  HandType
	}{
		{"QJJQ2", FourOfAKind},
		{"T55J5", FourOfAKind},
		{"KTJJT", FourOfAKind},
		{"JJJJJ", FiveOfAKind},
		{"J2345", OnePair},
	}
	for _, c := range cases {
		h := mustHand(t, c.cards+" 1", true)
		assert.Equal(t, c.want, h.Type(), "hand %s", c.cards)
	}
}

func TestOrdering(t *testing.T) {
	// Same type: compare card by card, so 33332 beats 2AAAA.
	stronger := mustHand(t, "33332 1", false)
	weaker := mustHand(t, "2AAAA 1", false)
	assert.True(t, weaker.less(stronger))
	assert.False(t, stronger.less(weaker))

	// With jokers, J is the weakest individual card.
	jokerHand := mustHand(t, "JKKK2 1", true)
	queenHand := mustHand(t, "QQQQ2 1", true)
	assert.True(t, jokerHand.less(queenHand))
}

func TestWinnings(t *testing.T) {
	assert.Equal(t, 6440, New().One.Solve(sampleLines(t)))
}

func TestWinningsWithJokers(t *testing.T) {
	assert.Equal(t, 5905, New().Two.Solve(sampleLines(t)))
}

func TestParse_BadHands(t *testing.T) {
	for _, input := range []string{"32T3 765\n", "32T3X 765\n", "32T3K bid\n", "32T3K\n"} {
		_, err := New().Parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, solve.ErrMalformedInput)
	}
}
