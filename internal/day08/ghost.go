package day08

import (
	"sort"
	"strings"

	"advent/internal/mathx"
)

// cycleShape describes one ghost's walk: after TimeToCycle steps it
// enters a loop of CycleLength steps. Goals (..Z labels) are either
// absolute steps hit before the loop or residues inside it.
type cycleShape struct {
	TimeToCycle int
	CycleLength int
	GoalsBefore []int
	GoalsInCycle []int
}

// analyse walks from start until a (instruction phase, label) state
// repeats, recording every goal step on the way.
func (n Network) analyse(start string) cycleShape {
	type state struct {
		phase int
		label string
	}
	seen := make(map[state]int)
	var goals []int
	label := start
	i := 0
	for {
		s := state{phase: i % len(n.Instructions), label: label}
		if first, ok := seen[s]; ok {
			shape := cycleShape{TimeToCycle: first, CycleLength: i - first}
			for _, g := range goals {
				if g < first {
					shape.GoalsBefore = append(shape.GoalsBefore, g)
				} else {
					shape.GoalsInCycle = append(shape.GoalsInCycle, g%shape.CycleLength)
				}
			}
			return shape
		}
		seen[s] = i
		if strings.HasSuffix(label, "Z") {
			goals = append(goals, i)
		}
		label = n.step(label, i)
		i++
	}
}

// GhostSteps finds the first step where every ghost, one per ..A
// label, stands on a ..Z label at the same time. Each ghost's goal
// steps form congruence classes once its walk cycles, so the answer
// is the smallest merge over one class per ghost.
func (n Network) GhostSteps() int {
	var starts []string
	for label := range n.Forks {
		if strings.HasSuffix(label, "A") {
			starts = append(starts, label)
		}
	}
	sort.Strings(starts)
	if len(starts) == 0 {
		return 0
	}

	shapes := make([]cycleShape, len(starts))
	latestCycle := 0
	for i, start := range starts {
		shapes[i] = n.analyse(start)
		if shapes[i].TimeToCycle > latestCycle {
			latestCycle = shapes[i].TimeToCycle
		}
	}

	best := -1
	// A goal one ghost hits before its loop only counts if every other
	// ghost is also on a goal at that exact step.
	for _, shape := range shapes {
		for _, step := range shape.GoalsBefore {
			if step != 0 && allOnGoal(shapes, step) && (best < 0 || step < best) {
				best = step
			}
		}
	}

	pick := make([]mathx.Congruence, len(shapes))
	var walk func(i int)
	walk = func(i int) {
		if i == len(shapes) {
			merged, err := mathx.MergeAll(pick)
			if err != nil {
				return
			}
			step := merged.Remainder
			if step < latestCycle {
				step += (latestCycle - step + merged.Modulus - 1) / merged.Modulus * merged.Modulus
			}
			if step != 0 && (best < 0 || step < best) {
				best = step
			}
			return
		}
		for _, r := range shapes[i].GoalsInCycle {
			pick[i] = mathx.Congruence{Remainder: r, Modulus: shapes[i].CycleLength}
			walk(i + 1)
		}
	}
	walk(0)
	if best < 0 {
		return 0
	}
	return best
}

func allOnGoal(shapes []cycleShape, step int) bool {
	for _, shape := range shapes {
		if !shape.onGoal(step) {
			return false
		}
	}
	return true
}

func (s cycleShape) onGoal(step int) bool {
	if step < s.TimeToCycle {
		for _, g := range s.GoalsBefore {
			if g == step {
				return true
			}
		}
		return false
	}
	for _, r := range s.GoalsInCycle {
		if step%s.CycleLength == r {
			return true
		}
	}
	return false
}
