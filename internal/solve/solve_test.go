package solve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// doublingDay is the harness contract exercised with trivial puzzle
// logic: one integer per line, part one doubles the first value, part
// two sums them all.
func doublingDay() *Day[[]int] {
	return &Day[[]int]{
		Name: "day00",
		Parse: func(input string) ([]int, error) {
			lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
			if len(lines) == 1 && lines[0] == "" {
				return nil, Malformedf(0, "expected at least one line")
			}
			values := make([]int, 0, len(lines))
			for i, line := range lines {
				n, err := strconv.Atoi(line)
				if err != nil {
					return nil, Malformedf(i+1, "expected integer, found %q", line)
				}
				values = append(values, n)
			}
			return values, nil
		},
		One: Part[[]int]{Label: "Doubled", Solve: func(values []int) Answer {
			return 2 * values[0]
		}},
		Two: Part[[]int]{Label: "Sum", Solve: func(values []int) Answer {
			total := 0
			for _, v := range values {
				total += v
			}
			return total
		}},
	}
}

func TestRun_TrivialInput(t *testing.T) {
	var out strings.Builder
	err := doublingDay().Run(strings.NewReader("5\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "Doubled: 10\nSum: 5\n", out.String())
}

func TestRun_EmptyInputIsMalformed(t *testing.T) {
	var out strings.Builder
	err := doublingDay().Run(strings.NewReader(""), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Empty(t, out.String(), "no answers may be printed on failure")
}

func TestRun_MalformedLineIsLocated(t *testing.T) {
	var out strings.Builder
	err := doublingDay().Run(strings.NewReader("5\nbogus\n7\n"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, out.String())
}

func TestRun_LargeInput(t *testing.T) {
	const lines = 100_000
	var in strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&in, "%d\n", i)
	}

	var out strings.Builder
	err := doublingDay().Run(strings.NewReader(in.String()), &out)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Doubled: 2\nSum: %d\n", lines*(lines+1)/2), out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stream broke") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestRun_ReadFailureIsFatal(t *testing.T) {
	var out strings.Builder
	err := doublingDay().Run(failingReader{}, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedInput)
	assert.Empty(t, out.String())
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	err := doublingDay().Run(strings.NewReader("5\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write answer")
}

func TestAnswers_Deterministic(t *testing.T) {
	day := doublingDay()
	one1, two1, err := day.Answers("3\n4\n")
	require.NoError(t, err)
	one2, two2, err := day.Answers("3\n4\n")
	require.NoError(t, err)
	assert.Equal(t, one1, one2)
	assert.Equal(t, two1, two2)
	assert.Equal(t, 6, one1)
	assert.Equal(t, 7, two1)
}

func TestParseError_Formatting(t *testing.T) {
	withLine := Malformedf(3, "expected %d fields", 2)
	assert.Equal(t, "malformed input at line 3: expected 2 fields", withLine.Error())

	noLine := Malformedf(0, "empty input")
	assert.Equal(t, "malformed input: empty input", noLine.Error())

	var parseErr *ParseError
	require.ErrorAs(t, withLine, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}
