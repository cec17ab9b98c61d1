// Package filtering selects packages by name, glob, or regex argument.
package filtering

import (
	"regexp"
	"strings"

	"github.com/ajxudir/aptshow/pkg/utils"
)

// Matcher defines the interface for package-name matching strategies.
//
// Example:
//
//	matcher, _ := filtering.ParseMatcher("lib*")
//	if matcher.Match("libc6") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	//
	// Parameters:
	//   - value: String to test against the pattern
	//
	// Returns:
	//   - bool: true if value matches the pattern
	Match(value string) bool

	// String returns a string representation of the matcher.
	//
	// Returns:
	//   - string: Description of the pattern
	String() string
}

// ExactMatcher matches strings that exactly equal the pattern.
//
// Fields:
//   - Pattern: The exact string to match
type ExactMatcher struct {
	// Pattern is the exact string to match.
	Pattern string
}

// Match tests if value exactly equals the pattern.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value equals pattern
func (m *ExactMatcher) Match(value string) bool {
	return value == m.Pattern
}

// String returns the pattern string.
//
// Returns:
//   - string: The exact pattern being matched
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// GlobMatcher matches strings using glob patterns.
//
// Supports:
//   - * matches any sequence of characters
//   - ? matches any single character
//
// Fields:
//   - Pattern: The glob pattern
type GlobMatcher struct {
	// Pattern is the glob pattern string.
	Pattern string
}

// Match tests if value matches the glob pattern.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value matches the glob pattern
func (m *GlobMatcher) Match(value string) bool {
	return utils.MatchGlob(value, m.Pattern)
}

// String returns the glob pattern.
//
// Returns:
//   - string: The glob pattern string (e.g., "lib*")
func (m *GlobMatcher) String() string {
	return m.Pattern
}

// RegexMatcher matches strings using regular expressions.
//
// Fields:
//   - Pattern: The regex pattern string
//   - regex: Compiled regex (set by NewRegexMatcher)
type RegexMatcher struct {
	// Pattern is the original regex pattern string.
	Pattern string

	// regex is the compiled regular expression.
	regex *regexp.Regexp
}

// Match tests if value matches the regex pattern.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value matches the regex
func (m *RegexMatcher) Match(value string) bool {
	if m.regex == nil {
		return false
	}
	return m.regex.MatchString(value)
}

// String returns the regex pattern.
//
// Returns:
//   - string: The pattern prefixed with tilde (e.g., "~^lib")
func (m *RegexMatcher) String() string {
	return "~" + m.Pattern
}

// NewRegexMatcher creates a regex matcher.
//
// Parameters:
//   - pattern: Regular expression pattern
//
// Returns:
//   - Matcher: A RegexMatcher instance
//   - error: Compilation error if pattern is invalid
func NewRegexMatcher(pattern string) (Matcher, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{Pattern: pattern, regex: regex}, nil
}

// IsPattern reports whether an argument is a pattern rather than a
// literal package name.
//
// Literal names report non-installed packages unconditionally; patterns
// only do so when --regex-all is given.
//
// Parameters:
//   - arg: Command-line argument
//
// Returns:
//   - bool: true for glob or regex arguments
func IsPattern(arg string) bool {
	return strings.HasPrefix(arg, "~") || strings.ContainsAny(arg, "*?")
}

// ParseMatcher creates a matcher from a pattern string.
//
// The pattern format is interpreted as follows:
//   - "name" - exact match
//   - "glob*" - glob match (if contains * or ?)
//   - "~regex" - regex match (if starts with ~)
//
// Parameters:
//   - pattern: Pattern string to parse
//
// Returns:
//   - Matcher: Appropriate matcher for the pattern
//   - error: Error if pattern is invalid (e.g., bad regex)
func ParseMatcher(pattern string) (Matcher, error) {
	if strings.HasPrefix(pattern, "~") {
		return NewRegexMatcher(pattern[1:])
	}
	if strings.ContainsAny(pattern, "*?") {
		return &GlobMatcher{Pattern: pattern}, nil
	}
	return &ExactMatcher{Pattern: pattern}, nil
}

// Verify interface implementations.
var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*GlobMatcher)(nil)
	_ Matcher = (*RegexMatcher)(nil)
)
