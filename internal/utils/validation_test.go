package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLabel(t *testing.T) {
	valid := []string{"IAU1976", "IERS2010", "DE403", "DEFAULT", "a.b-c_d"}
	for _, label := range valid {
		assert.NoError(t, ValidateLabel(label), "label %q should be valid", label)
	}

	invalid := []string{
		"",
		strings.Repeat("A", 33),
		"IAU 1976",
		"<script>",
		"IAU;DROP",
	}
	for _, label := range invalid {
		assert.Error(t, ValidateLabel(label), "label %q should be rejected", label)
	}
}
