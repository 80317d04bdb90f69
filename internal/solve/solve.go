// Package solve is the harness shared by every daily puzzle program.
//
// Each day is a linear pipeline over one process run: drain stdin, parse
// it into the day's puzzle structure, compute both answers, report them
// as two labelled lines on stdout. Parsing is deterministic and
// fail-fast; both parts are computed from the same parsed value and
// neither may depend on mutations made by the other.
package solve

import (
	"fmt"
	"io"
)

// Answer is one part's computed result. Every puzzle in this event
// produces an integer.
type Answer = int

// Part is one of a day's two solvers. Solvers are total: any input the
// parser accepts must yield an answer, so they return no error.
type Part[P any] struct {
	// Label prefixes the answer line, e.g. "Possible games".
	Label string
	Solve func(puzzle P) Answer
}

// Day wires one puzzle day into the harness: a parser from raw input to
// the day's puzzle structure, and the two part solvers.
type Day[P any] struct {
	Name  string
	Parse func(input string) (P, error)
	One   Part[P]
	Two   Part[P]
}

// Runner is the type-erased view of a Day, used by the multiplexer CLI
// and the per-day binaries alike.
type Runner interface {
	DayName() string
	// Run drains in, parses, solves both parts and writes the two
	// answer lines to out. A read or write failure, or malformed
	// input, aborts the run with nothing further written.
	Run(in io.Reader, out io.Writer) error
	// Answers runs the pipeline on already-read input without
	// reporting, for regression checks and tests.
	Answers(input string) (one, two Answer, err error)
}

func (d *Day[P]) DayName() string { return d.Name }

func (d *Day[P]) Answers(input string) (Answer, Answer, error) {
	puzzle, err := d.Parse(input)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", d.Name, err)
	}
	return d.One.Solve(puzzle), d.Two.Solve(puzzle), nil
}

func (d *Day[P]) Run(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%s: read input: %w", d.Name, err)
	}
	one, two, err := d.Answers(string(raw))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%s: %d\n", d.One.Label, one); err != nil {
		return fmt.Errorf("%s: write answer: %w", d.Name, err)
	}
	if _, err := fmt.Fprintf(out, "%s: %d\n", d.Two.Label, two); err != nil {
		return fmt.Errorf("%s: write answer: %w", d.Name, err)
	}
	return nil
}
