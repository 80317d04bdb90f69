// Package day08 walks the desert network: a looped list of left/right
// instructions over labelled forks.
package day08

import (
	"strings"

	"advent/internal/solve"
)

// Fork is one node and its two exits.
type Fork struct {
	Left  string
	Right string
}

// Network is the instruction tape plus the fork map.
type Network struct {
	Instructions string // bytes 'L' and 'R'
	Forks        map[string]Fork
}

// New returns the desert network puzzle: part one walks AAA to ZZZ,
// part two walks every ..A node at once until all stand on ..Z nodes.
func New() *solve.Day[Network] {
	return &solve.Day[Network]{
		Name:  "day08",
		Parse: parse,
		One: solve.Part[Network]{Label: "Steps", Solve: func(n Network) solve.Answer {
			return n.Steps("AAA", func(label string) bool { return label == "ZZZ" })
		}},
		Two: solve.Part[Network]{Label: "Ghost steps", Solve: func(n Network) solve.Answer {
			return n.GhostSteps()
		}},
	}
}

func (n Network) step(label string, i int) string {
	fork := n.Forks[label]
	if n.Instructions[i%len(n.Instructions)] == 'L' {
		return fork.Left
	}
	return fork.Right
}

// Steps walks from start until done, or returns 0 when the walk
// settles into a loop that never reaches a goal.
func (n Network) Steps(start string, done func(string) bool) int {
	if _, ok := n.Forks[start]; !ok {
		return 0
	}
	type state struct {
		phase int
		label string
	}
	seen := make(map[state]struct{})
	label := start
	for i := 0; ; i++ {
		if done(label) {
			return i
		}
		s := state{phase: i % len(n.Instructions), label: label}
		if _, ok := seen[s]; ok {
			return 0
		}
		seen[s] = struct{}{}
		label = n.step(label, i)
	}
}

func parse(input string) (Network, error) {
	blocks := strings.SplitN(strings.TrimRight(input, "\n"), "\n\n", 2)
	if len(blocks) != 2 {
		return Network{}, solve.Malformedf(0, "expected instructions, a blank line and forks")
	}
	instructions := blocks[0]
	if instructions == "" {
		return Network{}, solve.Malformedf(1, "empty instruction line")
	}
	for i := 0; i < len(instructions); i++ {
		if c := instructions[i]; c != 'L' && c != 'R' {
			return Network{}, solve.Malformedf(1, "instruction %d is %q, expected L or R", i+1, c)
		}
	}
	n := Network{Instructions: instructions, Forks: make(map[string]Fork)}
	for i, line := range strings.Split(blocks[1], "\n") {
		label, exits, ok := strings.Cut(line, " = (")
		if !ok || !strings.HasSuffix(exits, ")") {
			return Network{}, solve.Malformedf(i+3, "bad fork %q", line)
		}
		left, right, ok := strings.Cut(strings.TrimSuffix(exits, ")"), ", ")
		if !ok {
			return Network{}, solve.Malformedf(i+3, "bad fork %q", line)
		}
		n.Forks[label] = Fork{Left: left, Right: right}
	}
	for label, fork := range n.Forks {
		if _, ok := n.Forks[fork.Left]; !ok {
			return Network{}, solve.Malformedf(0, "fork %s points left at unknown %s", label, fork.Left)
		}
		if _, ok := n.Forks[fork.Right]; !ok {
			return Network{}, solve.Malformedf(0, "fork %s points right at unknown %s", label, fork.Right)
		}
	}
	return n, nil
}
