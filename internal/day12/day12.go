// Package day12 counts the ways damaged-spring rows can satisfy their
// group checksums.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Row is one line of spring conditions ('.', '#', '?') and the sizes
// of its damaged groups.
type Row struct {
	Springs string
	Groups  []int
}

// New returns the hot springs puzzle: part one counts arrangements per
// row as given, part two unfolds each row fivefold first. Both sum
// over all rows.
func New() *solve.Day[[]Row] {
	return &solve.Day[[]Row]{
		Name:  "day12",
		Parse: parse,
		One: solve.Part[[]Row]{Label: "Folded", Solve: func(rows []Row) solve.Answer {
			total := 0
			for _, r := range rows {
				total += r.Arrangements()
			}
			return total
		}},
		Two: solve.Part[[]Row]{Label: "Unfolded", Solve: func(rows []Row) solve.Answer {
			total := 0
			for _, r := range rows {
				total += r.Unfold(5).Arrangements()
			}
			return total
		}},
	}
}

// Unfold repeats the springs n times joined by '?' and the groups n
// times.
func (r Row) Unfold(n int) Row {
	springs := make([]string, n)
	groups := make([]int, 0, n*len(r.Groups))
	for i := 0; i < n; i++ {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Row{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the assignments of '?' springs consistent with
// the group sizes. Recursion over (spring offset, group offset) with
// memoization keeps the unfolded rows tractable.
func (r Row) Arrangements() int {
	type key struct{ spring, group int }
	memo := make(map[key]int)
	var count func(s, g int) int
	count = func(s, g int) int {
		for s < len(r.Springs) && r.Springs[s] == '.' {
			s++
		}
		if s >= len(r.Springs) {
			if g == len(r.Groups) {
				return 1
			}
			return 0
		}
		k := key{s, g}
		if v, ok := memo[k]; ok {
			return v
		}
		total := 0
		// Treat a leading '?' as operational.
		if r.Springs[s] == '?' {
			total += count(s+1, g)
		}
		// Or start the next damaged group here.
		if g < len(r.Groups) && r.fits(s, r.Groups[g]) {
			total += count(s+r.Groups[g]+1, g+1)
		}
		memo[k] = total
		return total
	}
	return count(0, 0)
}

// fits reports whether a damaged group of the given size can start at
// s: size springs that are all '#' or '?', ended by the row edge or a
// non-'#'.
func (r Row) fits(s, size int) bool {
	if s+size > len(r.Springs) {
		return false
	}
	for i := s; i < s+size; i++ {
		if r.Springs[i] == '.' {
			return false
		}
	}
	return s+size == len(r.Springs) || r.Springs[s+size] != '#'
}

func parse(input string) ([]Row, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, solve.Malformedf(0, "expected at least one row")
	}
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		row, err := parseRow(line)
		if err != nil {
			return nil, solve.Malformedf(i+1, "%v", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(line string) (Row, error) {
	springs, groupsText, ok := strings.Cut(line, " ")
	if !ok {
		return Row{}, fmt.Errorf("expected springs and groups")
	}
	for i := 0; i < len(springs); i++ {
		switch springs[i] {
		case '.', '#', '?':
		default:
			return Row{}, fmt.Errorf("unknown spring %q", springs[i])
		}
	}
	parts := strings.Split(groupsText, ",")
	groups := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return Row{}, fmt.Errorf("bad group size %q", p)
		}
		groups = append(groups, n)
	}
	return Row{Springs: springs, Groups: groups}, nil
}
