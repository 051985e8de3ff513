package utils

import (
	"errors"
	"regexp"
)

// Convention labels are short tokens like IAU1976 or IERS2010.
var validLabelPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateLabel validates that a convention label is safe and within
// reasonable limits.
func ValidateLabel(label string) error {
	if label == "" {
		return errors.New("label cannot be empty")
	}

	if len(label) > 32 {
		return errors.New("label too long (max 32 characters)")
	}

	if !validLabelPattern.MatchString(label) {
		return errors.New("label contains invalid characters")
	}

	return nil
}
