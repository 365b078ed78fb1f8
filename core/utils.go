package core

import (
	"strings"
	"time"
)

// ISODateFormat is the storage format for all dates. Lexical comparison
// of two such strings implies chronological comparison.
const ISODateFormat = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Today returns the current local date as an ISO date string.
func Today() string {
	return time.Now().Format(ISODateFormat)
}

// ValidISODate reports whether s is a well-formed YYYY-MM-DD date.
func ValidISODate(s string) bool {
	_, err := time.Parse(ISODateFormat, s)
	return err == nil
}

// SplitNames splits a comma-separated name list, trimming whitespace and
// dropping empty tokens.
func SplitNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// ContainsName reports whether the comma-separated name list contains
// exactly the given name. Matching is by full token, not substring, so
// "J. Doe" does not match "A. J. Doeman".
func ContainsName(list, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, n := range SplitNames(list) {
		if n == name {
			return true
		}
	}
	return false
}
