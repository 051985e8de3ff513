package obliquity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the table loader. Callers match them with errors.Is.
var (
	// ErrMalformedLine indicates a non-comment line that is not `<label> <float>`.
	ErrMalformedLine = errors.New("malformed table line")

	// ErrDuplicateLabel indicates the same label appeared more than once,
	// which would make lookups ambiguous.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrNoDefault indicates the table has no entry labeled DEFAULT.
	ErrNoDefault = errors.New("table has no DEFAULT entry")

	// ErrUnknownLabel indicates a lookup for a label the table does not contain.
	ErrUnknownLabel = errors.New("unknown label")
)

// ParseError reports where in the input a parse failure occurred.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, comments stripped
	Err  error  // one of the sentinel errors above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
