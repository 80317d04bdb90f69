// Package day05 follows the island almanac: seeds pass through a chain
// of named category maps until they become locations.
package day05

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Mapping remaps the source interval [From, From+Length) onto the
// destination values starting at To.
type Mapping struct {
	To     int
	From   int
	Length int
}

// CategoryMap converts numbers of one category to the next.
type CategoryMap struct {
	From     string
	To       string
	Mappings []Mapping
}

// Almanac is the seed list plus every category map, keyed by source
// category.
type Almanac struct {
	Seeds []int
	Maps  map[string]CategoryMap
}

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  int
	Length int
}

// New returns the almanac puzzle: part one treats each seed number on
// its own, part two treats the seed line as (start, length) pairs.
// Both report the lowest reachable location.
func New() *solve.Day[Almanac] {
	return &solve.Day[Almanac]{
		Name:  "day05",
		Parse: parse,
		One: solve.Part[Almanac]{Label: "Min location, single seeds", Solve: func(a Almanac) solve.Answer {
			best := -1
			for _, seed := range a.Seeds {
				loc := a.Convert("seed", seed)
				if best < 0 || loc < best {
					best = loc
				}
			}
			return best
		}},
		Two: solve.Part[Almanac]{Label: "Min location, seed ranges", Solve: func(a Almanac) solve.Answer {
			intervals := make([]Interval, 0, len(a.Seeds)/2)
			for i := 0; i+1 < len(a.Seeds); i += 2 {
				intervals = append(intervals, Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
			}
			best := -1
			for _, iv := range a.ConvertIntervals("seed", intervals) {
				if best < 0 || iv.Start < best {
					best = iv.Start
				}
			}
			return best
		}},
	}
}

// Convert pushes a single value from category through the chain until
// it reaches a location.
func (a Almanac) Convert(category string, value int) int {
	for category != "location" {
		m := a.Maps[category]
		value = m.convert(value)
		category = m.To
	}
	return value
}

func (m CategoryMap) convert(value int) int {
	for _, r := range m.Mappings {
		if value >= r.From && value < r.From+r.Length {
			return r.To + value - r.From
		}
	}
	return value
}

// ConvertIntervals pushes whole intervals through the chain, splitting
// them wherever a mapping boundary falls inside one.
func (a Almanac) ConvertIntervals(category string, intervals []Interval) []Interval {
	for category != "location" {
		m := a.Maps[category]
		var next []Interval
		for _, iv := range intervals {
			next = append(next, m.convertInterval(iv)...)
		}
		intervals = next
		category = m.To
	}
	return intervals
}

func (m CategoryMap) convertInterval(iv Interval) []Interval {
	mappings := make([]Mapping, len(m.Mappings))
	copy(mappings, m.Mappings)
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].From < mappings[j].From })

	var out []Interval
	pos := iv.Start
	end := iv.Start + iv.Length
	for _, r := range mappings {
		if pos >= end {
			break
		}
		rEnd := r.From + r.Length
		if rEnd <= pos || r.From >= end {
			continue
		}
		if pos < r.From {
			out = append(out, Interval{Start: pos, Length: r.From - pos})
			pos = r.From
		}
		stop := min(end, rEnd)
		out = append(out, Interval{Start: r.To + pos - r.From, Length: stop - pos})
		pos = stop
	}
	if pos < end {
		out = append(out, Interval{Start: pos, Length: end - pos})
	}
	return out
}

func parse(input string) (Almanac, error) {
	blocks := strings.Split(strings.TrimRight(input, "\n"), "\n\n")
	if len(blocks) < 2 {
		return Almanac{}, solve.Malformedf(0, "expected a seed line and at least one map")
	}
	seedsText, ok := strings.CutPrefix(blocks[0], "seeds: ")
	if !ok {
		return Almanac{}, solve.Malformedf(1, "expected seeds header")
	}
	seeds, err := parseNumbers(seedsText)
	if err != nil {
		return Almanac{}, solve.Malformedf(1, "%v", err)
	}
	a := Almanac{Seeds: seeds, Maps: make(map[string]CategoryMap, len(blocks)-1)}
	for _, block := range blocks[1:] {
		m, err := parseMap(block)
		if err != nil {
			return Almanac{}, solve.Malformedf(0, "%v", err)
		}
		a.Maps[m.From] = m
	}
	if err := a.checkChain(); err != nil {
		return Almanac{}, solve.Malformedf(0, "%v", err)
	}
	return a, nil
}

// checkChain verifies the maps link seed to location.
func (a Almanac) checkChain() error {
	category := "seed"
	for steps := 0; category != "location"; steps++ {
		if steps > len(a.Maps) {
			return fmt.Errorf("category chain loops before reaching location")
		}
		m, ok := a.Maps[category]
		if !ok {
			return fmt.Errorf("no map from category %q", category)
		}
		category = m.To
	}
	return nil
}

func parseMap(block string) (CategoryMap, error) {
	lines := strings.Split(block, "\n")
	header, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return CategoryMap{}, fmt.Errorf("bad map header %q", lines[0])
	}
	from, to, ok := strings.Cut(header, "-to-")
	if !ok {
		return CategoryMap{}, fmt.Errorf("bad map header %q", lines[0])
	}
	m := CategoryMap{From: from, To: to}
	for _, line := range lines[1:] {
		nums, err := parseNumbers(line)
		if err != nil {
			return CategoryMap{}, err
		}
		if len(nums) != 3 {
			return CategoryMap{}, fmt.Errorf("expected 3 numbers, found %d in %q", len(nums), line)
		}
		m.Mappings = append(m.Mappings, Mapping{To: nums[0], From: nums[1], Length: nums[2]})
	}
	return m, nil
}

func parseNumbers(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
