package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshotPolicyCandidate tests the behavior of SnapshotPolicy.Candidate.
//
// It verifies:
//   - An explicit candidate pin wins outright
//   - Without a pin, the best record priority selects the candidate
//   - Priority ties go to the earlier (newer) list entry
func TestSnapshotPolicyCandidate(t *testing.T) {
	t.Run("explicit pin wins", func(t *testing.T) {
		c, err := Parse([]byte(`
architecture: amd64
files:
  - id: 1
    archive: stable
    site: deb.debian.org
packages:
  - name: qux
    installed: "1.0"
    candidate: "1.0"
    versions:
      - version: "2.0"
        files: [{file: 1}]
      - version: "1.0"
        files: [{file: 1}]
`))
		require.NoError(t, err)

		p := c.Get("qux", "amd64")
		cand := NewSnapshotPolicy(c).Candidate(p)
		require.NotNil(t, cand)
		assert.Equal(t, "1.0", cand.Version)
		assert.Same(t, p.Installed, cand)
	})

	t.Run("best record priority wins", func(t *testing.T) {
		c, err := Parse([]byte(`
architecture: amd64
files:
  - id: 1
    archive: stable
    site: deb.debian.org
    priority: 990
  - id: 2
    archive: testing
    site: deb.debian.org
packages:
  - name: foo
    versions:
      - version: "3.0"
        files: [{file: 2}]
      - version: "2.0"
        files: [{file: 1}]
`))
		require.NoError(t, err)

		cand := NewSnapshotPolicy(c).Candidate(c.Get("foo", "amd64"))
		require.NotNil(t, cand)
		assert.Equal(t, "2.0", cand.Version, "pinned-up stable version beats newer testing version")
	})

	t.Run("ties go to the newer entry", func(t *testing.T) {
		c, err := Parse([]byte(`
architecture: amd64
files:
  - id: 1
    archive: stable
    site: deb.debian.org
packages:
  - name: foo
    versions:
      - version: "1.0"
        files: [{file: 1}]
      - version: "2.0"
        files: [{file: 1}]
`))
		require.NoError(t, err)

		cand := NewSnapshotPolicy(c).Candidate(c.Get("foo", "amd64"))
		require.NotNil(t, cand)
		assert.Equal(t, "2.0", cand.Version)
	})

	t.Run("never selects below the installed version", func(t *testing.T) {
		c, err := Parse([]byte(`
architecture: amd64
files:
  - id: 1
    archive: stable
    site: deb.debian.org
packages:
  - name: corge
    installed: "3.0"
    versions:
      - version: "2.0"
        files: [{file: 1}]
`))
		require.NoError(t, err)

		// The installed version was never published; the archived 2.0
		// outranks it on record priority but must not become the
		// candidate, or a downgrade would be reported as an upgrade.
		p := c.Get("corge", "amd64")
		cand := NewSnapshotPolicy(c).Candidate(p)
		require.NotNil(t, cand)
		assert.Same(t, p.Installed, cand)
		assert.Equal(t, "3.0", cand.Version)
	})

	t.Run("newer archived version still outranks installed", func(t *testing.T) {
		c, err := Parse([]byte(`
architecture: amd64
files:
  - id: 1
    archive: stable
    site: deb.debian.org
packages:
  - name: foo
    installed: "1.0"
    versions:
      - version: "2.0"
        files: [{file: 1}]
`))
		require.NoError(t, err)

		cand := NewSnapshotPolicy(c).Candidate(c.Get("foo", "amd64"))
		require.NotNil(t, cand)
		assert.Equal(t, "2.0", cand.Version)
	})

	t.Run("no versions yields nil", func(t *testing.T) {
		c, err := Parse([]byte("architecture: amd64\npackages:\n  - name: ghost\n"))
		require.NoError(t, err)
		assert.Nil(t, NewSnapshotPolicy(c).Candidate(c.Get("ghost", "amd64")))
	})
}

// TestSnapshotPolicyPriority tests the behavior of SnapshotPolicy.Priority.
//
// It verifies:
//   - Record priorities pass through as loaded
func TestSnapshotPolicyPriority(t *testing.T) {
	pol := NewSnapshotPolicy(&Cache{})
	assert.Equal(t, 990, pol.Priority(VersionFileRecord{Priority: 990}))
	assert.Equal(t, StatusPriority, pol.Priority(VersionFileRecord{Priority: StatusPriority}))
}
