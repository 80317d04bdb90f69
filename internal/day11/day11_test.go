package day11

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sample(t *testing.T) Starfield {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	s, err := parse(string(data))
	require.NoError(t, err)
	return s
}

func TestParse(t *testing.T) {
	s := sample(t)
	assert.Len(t, s.Rows, 9)
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 8, 9, 9}, s.Rows)
	assert.Equal(t, []int{0, 0, 1, 3, 4, 6, 7, 7, 9}, s.Cols)
}

func TestSumDistances(t *testing.T) {
	s := sample(t)
	cases := []struct {
		factor int
		want   int
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, s.SumDistances(c.factor), "factor %d", c.factor)
	}
}

func TestParts(t *testing.T) {
	day := New()
	s := sample(t)
	assert.Equal(t, 82000210, day.Two.Solve(s))
	assert.Equal(t, 374, day.One.Solve(s))
}

func TestExpand(t *testing.T) {
	// Occupied lines 0 and 3; lines 1 and 2 are empty and double.
	assert.Equal(t, []int{0, 5}, expand([]int{0, 3}, 2))
	// Duplicates share the same expansion.
	assert.Equal(t, []int{0, 5, 5}, expand([]int{0, 3, 3}, 2))
}

func TestAxisSum(t *testing.T) {
	assert.Equal(t, 0, axisSum([]int{7}))
	assert.Equal(t, 4, axisSum([]int{1, 5}))
	assert.Equal(t, 8, axisSum([]int{1, 3, 5}))
}

func TestParse_UnknownTile(t *testing.T) {
	_, err := parse("..\n.x\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, solve.ErrMalformedInput)
}
