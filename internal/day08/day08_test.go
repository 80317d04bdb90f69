package day08

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/solve"
)

func load(t *testing.T, name string) Network {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	n, err := parse(string(data))
	require.NoError(t, err)
	return n
}

func TestParse(t *testing.T) {
	n := load(t, "sample2.txt")
	assert.Equal(t, "LLR", n.Instructions)
	assert.Equal(t, Fork{Left: "BBB", Right: "BBB"}, n.Forks["AAA"])
	assert.Len(t, n.Forks, 3)
}

func TestSteps(t *testing.T) {
	day := New()
	assert.Equal(t, 2, day.One.Solve(load(t, "sample1.txt")))
	assert.Equal(t, 6, day.One.Solve(load(t, "sample2.txt")))
}

func TestSteps_NoPath(t *testing.T) {
	n, err := parse("L\n\nAAA = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n")
	require.NoError(t, err)
	assert.Equal(t, 0, New().One.Solve(n))
}

func TestAnalyse(t *testing.T) {
	n := load(t, "sample3.txt")
	shape := n.analyse("22A")
	assert.Equal(t, 2, shape.TimeToCycle)
	assert.Equal(t, 6, shape.CycleLength)
	assert.Empty(t, shape.GoalsBefore)
	assert.ElementsMatch(t, []int{3, 0}, shape.GoalsInCycle)
}

func TestGhostSteps(t *testing.T) {
	assert.Equal(t, 6, New().Two.Solve(load(t, "sample3.txt")))
}

func TestGhostSteps_SingleGhost(t *testing.T) {
	// With one ghost the answer collapses to the plain walk.
	n := load(t, "sample2.txt")
	renamed := Network{Instructions: n.Instructions, Forks: map[string]Fork{
		"AAA": {Left: "BBB", Right: "BBB"},
		"BBB": {Left: "AAA", Right: "ZZZ"},
		"ZZZ": {Left: "ZZZ", Right: "ZZZ"},
	}}
	assert.Equal(t, 6, renamed.GhostSteps())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no blank line", "LR\nAAA = (BBB, BBB)\n"},
		{"bad instruction", "LX\n\nAAA = (AAA, AAA)\n"},
		{"bad fork", "L\n\nAAA -> AAA\n"},
		{"dangling exit", "L\n\nAAA = (BBB, AAA)\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(c.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, solve.ErrMalformedInput)
		})
	}
}

func TestParse_AcceptsNumericLabels(t *testing.T) {
	n, err := parse(strings.Join([]string{
		"LR",
		"",
		"11A = (11Z, 11Z)",
		"11Z = (11A, 11A)",
	}, "\n") + "\n")
	require.NoError(t, err)
	assert.Equal(t, 1, n.Steps("11A", func(l string) bool { return strings.HasSuffix(l, "Z") }))
}
