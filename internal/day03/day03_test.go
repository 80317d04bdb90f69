package day03

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sample(t *testing.T) Schematic {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	s, err := parse(string(data))
	require.NoError(t, err)
	return s
}

func TestNumbers(t *testing.T) {
	s := sample(t)
	ns := s.numbers()
	require.Len(t, ns, 10)
	assert.Equal(t, number{value: 467, row: 0, start: 0, end: 2}, ns[0])
	assert.Equal(t, number{value: 598, row: 9, start: 5, end: 7}, ns[9])
}

func TestPartNumbersSum(t *testing.T) {
	assert.Equal(t, 4361, New().One.Solve(sample(t)))
}

func TestGearRatiosSum(t *testing.T) {
	assert.Equal(t, 467835, New().Two.Solve(sample(t)))
}

func TestNumberAtRowEnd(t *testing.T) {
	s, err := parse("..#123\n......\n")
	require.NoError(t, err)
	assert.Equal(t, 123, New().One.Solve(s))
}

func TestParse_RaggedGrid(t *testing.T) {
	_, err := parse("....\n...\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, solve.ErrMalformedInput)
}
