// Package day06 counts the ways to win toy boat races. Holding the
// button for h milliseconds of a t millisecond race covers h*(t-h)
// millimetres, so the winning holds sit between the roots of a
// quadratic.
package day06

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"advent/internal/solve"
)

// Race pairs an allowed time with the record distance to beat.
type Race struct {
	Time   int
	Record int
}

// WinningHolds counts the integer hold times that beat the record.
func (r Race) WinningHolds() int {
	// Beat the record by at least one millimetre: h*(t-h) >= record+1.
	target := float64(r.Record + 1)
	t := float64(r.Time)
	disc := t*t - 4*target
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int(math.Ceil((t - sq) / 2))
	hi := int(math.Floor((t + sq) / 2))
	// The roots come from floating point; nudge both bounds until they
	// are exact.
	beats := func(h int) bool { return h >= 0 && h <= r.Time && h*(r.Time-h) > r.Record }
	for beats(lo - 1) {
		lo--
	}
	for lo <= hi && !beats(lo) {
		lo++
	}
	for beats(hi + 1) {
		hi++
	}
	for hi >= lo && !beats(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// New returns the boat race puzzle: part one reads the sheet as
// several races and multiplies their winning-hold counts, part two
// ignores the spacing and reads one big race.
func New() *solve.Day[[]Race] {
	return &solve.Day[[]Race]{
		Name:  "day06",
		Parse: parse,
		One: solve.Part[[]Race]{Label: "Ways to win, separate races", Solve: func(races []Race) solve.Answer {
			product := 1
			for _, r := range races {
				product *= r.WinningHolds()
			}
			return product
		}},
		Two: solve.Part[[]Race]{Label: "Ways to win, kerned race", Solve: func(races []Race) solve.Answer {
			return kern(races).WinningHolds()
		}},
	}
}

// kern glues the digits of all races back into a single race.
func kern(races []Race) Race {
	var timeText, recordText strings.Builder
	for _, r := range races {
		timeText.WriteString(strconv.Itoa(r.Time))
		recordText.WriteString(strconv.Itoa(r.Record))
	}
	time, _ := strconv.Atoi(timeText.String())
	record, _ := strconv.Atoi(recordText.String())
	return Race{Time: time, Record: record}
}

func parse(input string) ([]Race, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) != 2 {
		return nil, solve.Malformedf(0, "expected exactly 2 lines, found %d", len(lines))
	}
	times, err := numberRow(lines[0], "Time:")
	if err != nil {
		return nil, solve.Malformedf(1, "%v", err)
	}
	records, err := numberRow(lines[1], "Distance:")
	if err != nil {
		return nil, solve.Malformedf(2, "%v", err)
	}
	if len(times) != len(records) {
		return nil, solve.Malformedf(2, "%d times but %d distances", len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

func numberRow(line, prefix string) ([]int, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return nil, fmt.Errorf("expected %q prefix", prefix)
	}
	fields := strings.Fields(rest)
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
