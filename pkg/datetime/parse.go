// Package datetime provides date utility functions for price histories.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/lng-economics/pkg/constants"
)

const (
	// DateLayout is the format expected in price files and is also the output
	// date format.
	DateLayout = constants.PriceDateLayout
)

// ParseDate parses a price-file date, ignoring surrounding whitespace.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// FormatDate returns t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MustParseDate parses a date string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(value string) time.Time {
	t, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}
