// Package day15 runs the lens library initialization sequence: the
// HASH checksum of each step, then the HASHMAP box shuffle.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Hash is the holiday checksum: start at 0, add each byte, multiply
// by 17, keep the low eight bits.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// New returns the lens library puzzle: part one sums the hash of each
// comma-separated step, part two runs the steps as box instructions
// and sums the focusing power.
func New() *solve.Day[[]string] {
	return &solve.Day[[]string]{
		Name:  "day15",
		Parse: parse,
		One: solve.Part[[]string]{Label: "Hash sum", Solve: func(steps []string) solve.Answer {
			total := 0
			for _, s := range steps {
				total += Hash(s)
			}
			return total
		}},
		Two: solve.Part[[]string]{Label: "Focusing power", Solve: func(steps []string) solve.Answer {
			return focusingPower(steps)
		}},
	}
}

// lens is a labelled focal length inside a box.
type lens struct {
	label string
	focal int
}

// focusingPower runs the instructions over 256 ordered boxes. A
// "label=n" step replaces the lens with that label or appends it; a
// "label-" step removes it and closes the gap.
func focusingPower(steps []string) int {
	var boxes [256][]lens
	for _, step := range steps {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := Hash(label)
			for i, l := range boxes[box] {
				if l.label == label {
					boxes[box] = append(boxes[box][:i], boxes[box][i+1:]...)
					break
				}
			}
			continue
		}
		label, focalText, _ := strings.Cut(step, "=")
		focal, _ := strconv.Atoi(focalText)
		box := Hash(label)
		replaced := false
		for i, l := range boxes[box] {
			if l.label == label {
				boxes[box][i].focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[box] = append(boxes[box], lens{label: label, focal: focal})
		}
	}
	total := 0
	for b, box := range boxes {
		for slot, l := range box {
			total += (b + 1) * (slot + 1) * l.focal
		}
	}
	return total
}

func parse(input string) ([]string, error) {
	// Newlines are line wrapping, not separators.
	sequence := strings.ReplaceAll(input, "\n", "")
	if sequence == "" {
		return nil, solve.Malformedf(0, "empty sequence")
	}
	steps := strings.Split(sequence, ",")
	for i, step := range steps {
		if err := checkStep(step); err != nil {
			return nil, solve.Malformedf(0, "step %d: %v", i+1, err)
		}
	}
	return steps, nil
}

func checkStep(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		if label == "" || strings.ContainsAny(label, "=-") {
			return fmt.Errorf("bad removal %q", step)
		}
		return nil
	}
	label, focalText, ok := strings.Cut(step, "=")
	if !ok || label == "" {
		return fmt.Errorf("bad step %q", step)
	}
	if _, err := strconv.Atoi(focalText); err != nil {
		return fmt.Errorf("bad focal length %q", focalText)
	}
	return nil
}
