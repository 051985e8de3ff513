// Package obliquity holds the adopted values for the obliquity of the
// ecliptic, keyed by reference-convention label (IAU1976, IERS2010, ...).
// All values are in arcseconds. A table is built once by Parse and never
// mutated afterwards, so it is safe to share across goroutines without
// locking.
package obliquity

import (
	"bytes"
	"fmt"
	"strconv"
)

// DefaultLabel is the reserved label marking the entry used when no
// convention is requested explicitly.
const DefaultLabel = "DEFAULT"

// Entry pairs a reference-convention label with its adopted value in arcseconds.
type Entry struct {
	Label       string
	ValueArcsec float64
}

// Table is an immutable, ordered set of obliquity entries.
type Table struct {
	entries []Entry
	index   map[string]float64
}

// Lookup returns the value for the given label. An empty label falls back
// to the DEFAULT entry. A label the table does not contain returns an error
// wrapping ErrUnknownLabel.
func (t *Table) Lookup(label string) (float64, error) {
	if label == "" {
		label = DefaultLabel
	}

	value, ok := t.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return value, nil
}

// Default returns the value of the DEFAULT entry. Parse guarantees the
// entry exists, so Default never fails on a table it produced.
func (t *Table) Default() float64 {
	return t.index[DefaultLabel]
}

// Labels returns every label in file order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.entries))
	for i, entry := range t.entries {
		labels[i] = entry.Label
	}
	return labels
}

// Entries returns a copy of the entries in file order. The copy keeps the
// table itself immutable.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Format serializes the table back to `label value` lines. Re-parsing the
// output yields a table with the same label to value mapping.
func (t *Table) Format() []byte {
	var buf bytes.Buffer
	for _, entry := range t.entries {
		buf.WriteString(entry.Label)
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(entry.ValueArcsec, 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
