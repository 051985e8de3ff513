package obliquity

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Table from line-oriented text. Everything from a `#` to
// the end of its line is a comment; blank lines are skipped. Every other
// line must be `<label> <value>` with a floating-point value. Parsing is
// atomic: any error returns a nil table.
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	index := make(map[string]float64)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNum, Text: strings.TrimSpace(line), Err: ErrMalformedLine}
		}

		label := fields[0]
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: strings.TrimSpace(line), Err: ErrMalformedLine}
		}

		if _, seen := index[label]; seen {
			return nil, &ParseError{Line: lineNum, Text: strings.TrimSpace(line), Err: ErrDuplicateLabel}
		}

		index[label] = value
		entries = append(entries, Entry{Label: label, ValueArcsec: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning table text: %w", err)
	}

	if _, ok := index[DefaultLabel]; !ok {
		return nil, ErrNoDefault
	}

	return &Table{entries: entries, index: index}, nil
}
