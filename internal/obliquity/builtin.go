package obliquity

import (
	_ "embed"
	"fmt"
)

//go:embed ecliptic.dat
var builtinData []byte

// Builtin is the obliquity table compiled into the binary. It is used when
// no external table source is configured.
var Builtin = mustParse(builtinData)

func mustParse(data []byte) *Table {
	table, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("obliquity: embedded table is invalid: %v", err))
	}
	return table
}
