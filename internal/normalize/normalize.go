// Package normalize converts raw text scraped from forecast pages into typed
// values. Every failure mode collapses to nil; callers decide whether a
// missing value is worth a warning.
package normalize

import (
	"strconv"
	"strings"
)

// noData is the placeholder tenki.jp renders in place of a missing percentage.
const noData = "---"

// ParseNumber extracts a float from text that may carry units or other
// decoration, e.g. "12.3℃" or "1013.2hPa". Returns nil when no parseable
// number remains after stripping.
func ParseNumber(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParsePercent parses a probability like "45%" into an integer. The site's
// "---" placeholder and empty text map to nil.
func ParsePercent(s string) *int {
	if strings.Contains(s, noData) {
		return nil
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &v
}
