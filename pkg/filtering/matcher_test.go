package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMatcher tests the behavior of ParseMatcher.
//
// It verifies:
//   - Tilde-prefixed arguments produce regex matchers
//   - Arguments containing * or ? produce glob matchers
//   - Everything else produces exact matchers
//   - Invalid regex patterns fail
func TestParseMatcher(t *testing.T) {
	t.Run("regex", func(t *testing.T) {
		m, err := ParseMatcher("~^lib")
		require.NoError(t, err)
		assert.IsType(t, &RegexMatcher{}, m)
		assert.Equal(t, "~^lib", m.String())
	})

	t.Run("glob", func(t *testing.T) {
		m, err := ParseMatcher("lib*")
		require.NoError(t, err)
		assert.IsType(t, &GlobMatcher{}, m)
	})

	t.Run("exact", func(t *testing.T) {
		m, err := ParseMatcher("libc6")
		require.NoError(t, err)
		assert.IsType(t, &ExactMatcher{}, m)
	})

	t.Run("invalid regex", func(t *testing.T) {
		_, err := ParseMatcher("~[unclosed")
		assert.Error(t, err)
	})
}

// TestMatchers tests the matching behavior of each matcher kind.
//
// It verifies:
//   - Exact matchers compare whole strings
//   - Glob matchers anchor the whole value
//   - Regex matchers are unanchored unless the pattern anchors them
func TestMatchers(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		m := &ExactMatcher{Pattern: "libc6"}
		assert.True(t, m.Match("libc6"))
		assert.False(t, m.Match("libc6-dev"))
	})

	t.Run("glob", func(t *testing.T) {
		m := &GlobMatcher{Pattern: "lib*"}
		assert.True(t, m.Match("libc6"))
		assert.False(t, m.Match("zlib"))

		q := &GlobMatcher{Pattern: "libc?"}
		assert.True(t, q.Match("libc6"))
		assert.False(t, q.Match("libc66"))
	})

	t.Run("regex", func(t *testing.T) {
		m, err := NewRegexMatcher("^lib")
		require.NoError(t, err)
		assert.True(t, m.Match("libc6"))
		assert.False(t, m.Match("zlib"))

		sub, err := NewRegexMatcher("c6")
		require.NoError(t, err)
		assert.True(t, sub.Match("libc6-dev"), "unanchored regex matches substrings")
	})
}

// TestIsPattern tests the behavior of IsPattern.
//
// It verifies:
//   - Glob and regex arguments are patterns
//   - Literal names are not
func TestIsPattern(t *testing.T) {
	assert.True(t, IsPattern("lib*"))
	assert.True(t, IsPattern("libc?"))
	assert.True(t, IsPattern("~^lib"))
	assert.False(t, IsPattern("libc6"))
	assert.False(t, IsPattern("libc6:i386"))
}
