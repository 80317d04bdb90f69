// Package days registers every puzzle behind the type-erased runner
// interface.
package days

import (
	"advent/internal/day01"
	"advent/internal/day02"
	"advent/internal/day03"
	"advent/internal/day04"
	"advent/internal/day05"
	"advent/internal/day06"
	"advent/internal/day07"
	"advent/internal/day08"
	"advent/internal/day09"
	"advent/internal/day10"
	"advent/internal/day11"
	"advent/internal/day12"
	"advent/internal/day13"
	"advent/internal/day14"
	"advent/internal/day15"
	"advent/internal/day16"
	"advent/internal/day17"
	"advent/internal/solve"
)

// All returns every puzzle, in calendar order.
func All() []solve.Runner {
	return []solve.Runner{
		day01.New(),
		day02.New(),
		day03.New(),
		day04.New(),
		day05.New(),
		day06.New(),
		day07.New(),
		day08.New(),
		day09.New(),
		day10.New(),
		day11.New(),
		day12.New(),
		day13.New(),
		day14.New(),
		day15.New(),
		day16.New(),
		day17.New(),
	}
}

// Find returns the puzzle with the given name, like "day07".
func Find(name string) (solve.Runner, bool) {
	for _, d := range All() {
		if d.DayName() == name {
			return d, true
		}
	}
	return nil, false
}
