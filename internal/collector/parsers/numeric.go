// Package parsers turns raw facility output (command stdout, sysfs files,
// CIM JSON) into typed values. Every function is pure and never panics on
// malformed input.
package parsers

import (
	"math"
	"strconv"
	"strings"
)

// Int parses a decimal value leniently. Fractional values are rounded and
// anything that does not parse yields 0.
func Int(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

// Unquote strips one layer of matching single or double quotes.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' || first == '"') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
