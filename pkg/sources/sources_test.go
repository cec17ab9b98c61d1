package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/aptshow/pkg/cache"
)

// TestParse tests the behavior of Parse.
//
// It verifies:
//   - Binary entries are kept with URI, distribution and components
//   - Comments, blanks, deb-src and malformed lines are dropped
//   - Bracketed option blocks are skipped
//   - Absolute-path distributions keep no components
func TestParse(t *testing.T) {
	t.Run("plain entry", func(t *testing.T) {
		l := Parse("deb http://deb.debian.org/debian stable main contrib\n")
		require.Len(t, l.Entries, 1)
		e := l.Entries[0]
		assert.Equal(t, "deb", e.Type)
		assert.Equal(t, "http://deb.debian.org/debian", e.URI)
		assert.Equal(t, "stable", e.Distribution)
		assert.Equal(t, []string{"main", "contrib"}, e.Components)
	})

	t.Run("noise is dropped", func(t *testing.T) {
		l := Parse(`# a comment

deb-src http://deb.debian.org/debian stable main
deb broken-line
deb http://deb.debian.org/debian stable main # trailing comment
`)
		require.Len(t, l.Entries, 1)
		assert.Equal(t, []string{"main"}, l.Entries[0].Components)
	})

	t.Run("option blocks are skipped", func(t *testing.T) {
		l := Parse("deb [arch=amd64 signed-by=/etc/key.gpg] http://deb.debian.org/debian stable main\n")
		require.Len(t, l.Entries, 1)
		assert.Equal(t, "http://deb.debian.org/debian", l.Entries[0].URI)
		assert.Equal(t, "stable", l.Entries[0].Distribution)
	})

	t.Run("absolute distribution has no components", func(t *testing.T) {
		l := Parse("deb http://example.org/debian ./ extra\n")
		require.Len(t, l.Entries, 1)
		assert.Equal(t, ".", l.Entries[0].Distribution)
		assert.Empty(t, l.Entries[0].Components)
	})
}

// TestEntryIndexFiles tests the behavior of Entry.IndexFiles.
//
// It verifies:
//   - One index file per component, sharing site and distribution
//   - Component-less entries yield a single unconstrained index file
func TestEntryIndexFiles(t *testing.T) {
	t.Run("one per component", func(t *testing.T) {
		e := Entry{URI: "http://deb.debian.org/debian", Distribution: "stable", Components: []string{"main", "contrib"}}
		files := e.IndexFiles()
		require.Len(t, files, 2)
		assert.Equal(t, IndexFile{Site: "deb.debian.org", Distribution: "stable", Component: "main"}, files[0])
		assert.Equal(t, IndexFile{Site: "deb.debian.org", Distribution: "stable", Component: "contrib"}, files[1])
	})

	t.Run("component-less entry", func(t *testing.T) {
		e := Entry{URI: "http://example.org/debian", Distribution: "."}
		files := e.IndexFiles()
		require.Len(t, files, 1)
		assert.Equal(t, "", files[0].Component)
	})
}

// TestIndexFileOwns tests the behavior of IndexFile.Owns.
//
// It verifies:
//   - Ownership requires matching site and component
//   - An empty index component matches any file component
//   - NotSource and nil files are never owned
func TestIndexFileOwns(t *testing.T) {
	idx := IndexFile{Site: "deb.debian.org", Distribution: "stable", Component: "main"}

	assert.True(t, idx.Owns(&cache.RepositoryFile{Site: "deb.debian.org", Component: "main"}))
	assert.False(t, idx.Owns(&cache.RepositoryFile{Site: "other.org", Component: "main"}))
	assert.False(t, idx.Owns(&cache.RepositoryFile{Site: "deb.debian.org", Component: "contrib"}))
	assert.False(t, idx.Owns(&cache.RepositoryFile{Site: "deb.debian.org", Component: "main", NotSource: true}))
	assert.False(t, idx.Owns(nil))

	t.Run("empty component matches anything", func(t *testing.T) {
		open := IndexFile{Site: "example.org"}
		assert.True(t, open.Owns(&cache.RepositoryFile{Site: "example.org", Component: "main"}))
		assert.True(t, open.Owns(&cache.RepositoryFile{Site: "example.org"}))
	})
}

// TestLoadFile tests the behavior of LoadFile.
//
// It verifies:
//   - An existing file is parsed
//   - A missing file yields an empty list without error
func TestLoadFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sources.list")
		require.NoError(t, os.WriteFile(path, []byte("deb http://deb.debian.org/debian stable main\n"), 0o644))

		l, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, l.Entries, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		l, err := LoadFile(filepath.Join(t.TempDir(), "absent.list"))
		require.NoError(t, err)
		assert.Empty(t, l.Entries)
	})
}

// TestSiteOf tests the behavior of siteOf.
//
// It verifies:
//   - Scheme and path are stripped from repository URIs
func TestSiteOf(t *testing.T) {
	assert.Equal(t, "deb.debian.org", siteOf("http://deb.debian.org/debian"))
	assert.Equal(t, "deb.debian.org", siteOf("https://deb.debian.org"))
	assert.Equal(t, "example.org", siteOf("example.org/repo"))
}
