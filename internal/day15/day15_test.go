package day15

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sample(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	steps, err := parse(string(data))
	require.NoError(t, err)
	return steps
}

func TestHash(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
		{"", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Hash(c.in), "Hash(%q)", c.in)
	}
}

func TestHashSum(t *testing.T) {
	assert.Equal(t, 1320, New().One.Solve(sample(t)))
}

func TestFocusingPower(t *testing.T) {
	assert.Equal(t, 145, New().Two.Solve(sample(t)))
}

func TestParse_JoinsWrappedLines(t *testing.T) {
	steps, err := parse("rn=1,c\nm-\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"rn=1", "cm-"}, steps)
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"", "rn=x\n", "=1\n", "rn\n"} {
		_, err := parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, solve.ErrMalformedInput)
	}
}
