package solve

import (
	"errors"
	"fmt"
)

// ErrMalformedInput marks input that does not conform to a day's expected
// format. Parsers fail with it before any solving starts; there is no
// partial-parse recovery.
var ErrMalformedInput = errors.New("malformed input")

// ParseError reports where and why parsing rejected the input.
type ParseError struct {
	// Line is 1-based. Zero means the failure has no single line, e.g.
	// empty input.
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed input: %s", e.Detail)
}

func (e *ParseError) Unwrap() error { return ErrMalformedInput }

// Malformedf builds a ParseError for the given line (0 for no line).
func Malformedf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Detail: fmt.Sprintf(format, args...)}
}
