// Package cache provides the in-memory package cache model and the YAML
// snapshot adapter that materializes it.
//
// The model is a flattened view of an APT-style package cache: every
// package carries its installed version and an ordered, newest-first list
// of available versions, and every version carries the repository-file
// records that provide it. All classification logic operates on these
// plain slices; no sentinel-terminated traversal survives from the
// underlying cache format.
package cache

// Pin priorities assigned to repository files when the snapshot does not
// declare one explicitly. These mirror the dpkg/apt defaults.
const (
	// DefaultPriority is the standard priority of a configured archive.
	DefaultPriority = 500

	// StatusPriority is the priority of the local dpkg status records.
	// Status records describe what is installed, not what is fetchable.
	StatusPriority = 100
)

// RepositoryFile represents one index file contributing version information
// to the cache.
//
// Fields:
//   - ID: Stable identity of the file within one cache load
//   - Archive: Archive label from the file's Release data (e.g., "stable"), may be empty
//   - Codename: Codename from the file's Release data (e.g., "bookworm"), may be empty
//   - Site: Host the file was fetched from (e.g., "deb.debian.org")
//   - Component: Component within the distribution (e.g., "main")
//   - NotSource: Marks metadata-only origins such as the dpkg status file;
//     such records never count as installable sources and never contribute
//     to distribution attribution
//   - Priority: Default pin priority for records backed by this file
type RepositoryFile struct {
	ID        uint64
	Archive   string
	Codename  string
	Site      string
	Component string
	NotSource bool
	Priority  int
}

// VersionFileRecord ties a version to one repository file providing it.
//
// Fields:
//   - File: The providing repository file
//   - Priority: Pin priority of this record; only meaningful relative to
//     other records of the same version
type VersionFileRecord struct {
	File     *RepositoryFile
	Priority int
}

// Version is one version of a package known to the cache.
//
// Two Version values with equal strings but different origins remain
// distinct: identity comparisons use ID, never the version string.
//
// Fields:
//   - ID: Stable identity of this version record within one cache load
//   - Version: The textual version (e.g., "1.2.3-1")
//   - Files: Ordered records of the repository files providing this version
type Version struct {
	ID      uint64
	Version string
	Files   []VersionFileRecord
}

// HasSourceRecord reports whether any providing file is a real source.
//
// Versions known only through NotSource records (e.g., the dpkg status
// file) are installed but no longer fetchable from any archive.
//
// Returns:
//   - bool: true if at least one record's file is not flagged NotSource
func (v *Version) HasSourceRecord() bool {
	for _, rec := range v.Files {
		if !rec.File.NotSource {
			return true
		}
	}
	return false
}

// Package selection states as recorded by dpkg.
const (
	SelectedUnknown   = "unknown"
	SelectedInstall   = "install"
	SelectedHold      = "hold"
	SelectedDeinstall = "deinstall"
	SelectedPurge     = "purge"
)

// Package is one package known to the cache, identified by name and
// architecture.
//
// Fields:
//   - Name: Package name
//   - Architecture: Package architecture (e.g., "amd64", "all")
//   - Selected: dpkg selection state (install, hold, deinstall, purge, unknown)
//   - InstState: dpkg install state (ok, reinst-required, ...)
//   - CurrentState: dpkg current state (installed, config-files, ...)
//   - Installed: The installed version, or nil when not installed
//   - Versions: All known versions, newest first; includes Installed
//   - native: True when Architecture matches the cache's native architecture
type Package struct {
	Name         string
	Architecture string
	Selected     string
	InstState    string
	CurrentState string
	Installed    *Version
	Versions     []*Version

	native bool
}

// FullName returns the package name, architecture-qualified when needed.
//
// Packages built for the native architecture or for "all" are unambiguous
// by bare name; anything else is qualified as "name:arch".
//
// Returns:
//   - string: "name" or "name:arch"
func (p *Package) FullName() string {
	if p.native || p.Architecture == "all" || p.Architecture == "" {
		return p.Name
	}
	return p.Name + ":" + p.Architecture
}

// IsHeld reports whether the package is held back by dpkg selection state.
//
// Returns:
//   - bool: true if the selection state is "hold"
func (p *Package) IsHeld() bool {
	return p.Selected == SelectedHold
}

// StateTriple returns the dpkg selection/install/current state strings for
// display in the all-versions header line.
//
// Returns:
//   - string: Selection state (e.g., "install", "hold")
//   - string: Install state (e.g., "ok")
//   - string: Current state (e.g., "installed")
func (p *Package) StateTriple() (string, string, string) {
	sel := p.Selected
	if sel == "" {
		sel = SelectedUnknown
	}
	inst := p.InstState
	if inst == "" {
		inst = "ok"
	}
	cur := p.CurrentState
	if cur == "" {
		cur = "not-installed"
	}
	return sel, inst, cur
}
