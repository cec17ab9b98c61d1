package utils

import (
	"regexp"
	"strings"
)

// MatchGlob tests whether a value matches a glob pattern.
//
// Supported syntax:
//   - * matches any sequence of characters
//   - ? matches any single character
//   - ! prefix negates the match
//
// Package names have no path structure, so * is not segment-limited the
// way it is for file paths.
//
// Parameters:
//   - value: The string to test
//   - pattern: The glob pattern to match against
//
// Returns:
//   - bool: true if value matches the pattern
func MatchGlob(value, pattern string) bool {
	negate := false
	if strings.HasPrefix(pattern, "!") {
		negate = true
		pattern = pattern[1:]
	}

	matched, _ := regexp.MatchString(globToRegex(pattern), value)

	if negate {
		return !matched
	}
	return matched
}

// globToRegex converts a glob pattern to an anchored regular expression.
//
// It performs the following conversions:
//   - * becomes .*  (any characters)
//   - ? becomes .   (single character)
//   - Other characters are escaped with regexp.QuoteMeta
//
// Parameters:
//   - pattern: The glob pattern to convert
//
// Returns:
//   - string: An anchored regular expression equivalent to the glob
func globToRegex(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}
