package day13

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sample(t *testing.T) []Pattern {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	patterns, err := parse(string(data))
	require.NoError(t, err)
	return patterns
}

func TestScore(t *testing.T) {
	patterns := sample(t)
	require.Len(t, patterns, 2)
	assert.Equal(t, 5, patterns[0].Score(0), "first pattern mirrors between columns 5 and 6")
	assert.Equal(t, 400, patterns[1].Score(0), "second pattern mirrors between rows 4 and 5")
}

func TestSmudgedScore(t *testing.T) {
	patterns := sample(t)
	assert.Equal(t, 300, patterns[0].SmudgedScore())
	assert.Equal(t, 100, patterns[1].SmudgedScore())
}

func TestSums(t *testing.T) {
	day := New()
	assert.Equal(t, 405, day.One.Solve(sample(t)))
	assert.Equal(t, 400, day.Two.Solve(sample(t)))
}

func TestScore_SkipFindsNothingElse(t *testing.T) {
	p := Pattern{rows: []string{"##", "##"}}
	require.Equal(t, 100, p.Score(0))
	// Skipping the horizontal line leaves the vertical one.
	assert.Equal(t, 1, p.Score(100))
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"", "#.\n#\n", "#x\n##\n"} {
		_, err := parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, solve.ErrMalformedInput)
	}
}
