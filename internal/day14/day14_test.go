package day14

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func sample(t *testing.T) Board {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	b, err := parse(string(data))
	require.NoError(t, err)
	return b
}

func TestTiltNorth(t *testing.T) {
	b := sample(t)
	b.TiltNorth()
	want := strings.Join([]string{
		"OOOO.#.O..",
		"OO..#....#",
		"OO..O##..O",
		"O..#.OO...",
		"........#.",
		"..#....#.#",
		"..O..#.O.O",
		"..O.......",
		"#....###..",
		"#....#....",
	}, "\n")
	assert.Equal(t, want, b.String())
	assert.Equal(t, 136, b.Load())
}

func TestSpin(t *testing.T) {
	b := sample(t)
	b.Spin()
	afterOne := strings.Join([]string{
		".....#....",
		"....#...O#",
		"...OO##...",
		".OO#......",
		".....OOO#.",
		".O#...O#.#",
		"....O#....",
		"......OOOO",
		"#...O###..",
		"#..OO#....",
	}, "\n")
	assert.Equal(t, afterOne, b.String())

	b.Spin()
	b.Spin()
	afterThree := strings.Join([]string{
		".....#....",
		"....#...O#",
		".....##...",
		"..O#......",
		".....OOO#.",
		".O#...O#.#",
		"....O#...O",
		".......OOO",
		"#...O###.O",
		"#.OOO#...O",
	}, "\n")
	assert.Equal(t, afterThree, b.String())
}

func TestParts(t *testing.T) {
	day := New()
	b := sample(t)
	// The solvers clone the board, so part order must not matter.
	assert.Equal(t, 64, day.Two.Solve(b))
	assert.Equal(t, 136, day.One.Solve(b))
}

func TestSolveLeavesBoardUntouched(t *testing.T) {
	b := sample(t)
	before := b.String()
	New().One.Solve(b)
	assert.Equal(t, before, b.String())
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"", "O.\nO\n", "OX\n..\n"} {
		_, err := parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, solve.ErrMalformedInput)
	}
}
