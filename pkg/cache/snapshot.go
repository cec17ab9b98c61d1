package cache

import (
	"fmt"
	"os"
	"sort"

	"github.com/iancoleman/orderedmap"
	debver "github.com/knqyf263/go-deb-version"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/aptshow/pkg/verbose"
)

// snapshotFile is the YAML shape of one repository file entry.
// Priority is a pointer so an explicit zero survives loading instead of
// being mistaken for an absent field.
type snapshotFile struct {
	ID        uint64 `yaml:"id"`
	Archive   string `yaml:"archive"`
	Codename  string `yaml:"codename"`
	Site      string `yaml:"site"`
	Component string `yaml:"component"`
	NotSource bool   `yaml:"not_source"`
	Priority  *int   `yaml:"priority"`
}

// snapshotRecord is the YAML shape of one version-file record.
type snapshotRecord struct {
	File     uint64 `yaml:"file"`
	Priority *int   `yaml:"priority"`
}

// snapshotVersion is the YAML shape of one package version.
type snapshotVersion struct {
	Version string           `yaml:"version"`
	Files   []snapshotRecord `yaml:"files"`
}

// snapshotPackage is the YAML shape of one package entry.
type snapshotPackage struct {
	Name         string            `yaml:"name"`
	Architecture string            `yaml:"architecture"`
	Selected     string            `yaml:"selected"`
	InstState    string            `yaml:"inst_state"`
	CurrentState string            `yaml:"current_state"`
	Installed    string            `yaml:"installed"`
	Candidate    string            `yaml:"candidate"`
	Versions     []snapshotVersion `yaml:"versions"`
}

// snapshot is the YAML shape of a full cache snapshot.
type snapshot struct {
	Architecture string            `yaml:"architecture"`
	Files        []snapshotFile    `yaml:"files"`
	Packages     []snapshotPackage `yaml:"packages"`
}

// Cache is a fully materialized package cache.
//
// Packages are held in insertion order (the cache's natural enumeration
// order) and are addressable by their "name:arch" key.
//
// Fields:
//   - Architecture: Native architecture of the cache
//   - Files: All repository files by identity
type Cache struct {
	Architecture string
	Files        map[uint64]*RepositoryFile

	packages *orderedmap.OrderedMap
	pins     map[*Package]string
	nextID   uint64
}

// Load reads and materializes a cache snapshot from a YAML file.
//
// Parameters:
//   - path: Path to the snapshot file
//
// Returns:
//   - *Cache: The materialized cache
//   - error: Read, parse, or validation error
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache snapshot: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing cache snapshot %s: %w", path, err)
	}
	verbose.CacheLoaded(path, c.Len(), len(c.Files))
	return c, nil
}

// Parse materializes a cache from snapshot YAML bytes.
//
// It performs the following operations:
//   - Step 1: Unmarshals the snapshot and validates file references
//   - Step 2: Builds Version values with stable identities per record
//   - Step 3: Sorts each package's version list newest-first by Debian
//     version ordering (stable, so equal strings keep snapshot order)
//   - Step 4: Links the installed version to its list entry, synthesizing
//     a status-only version when the installed string is not listed
//
// Parameters:
//   - data: Snapshot YAML bytes
//
// Returns:
//   - *Cache: The materialized cache
//   - error: Parse or validation error
func Parse(data []byte) (*Cache, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap.Architecture == "" {
		return nil, fmt.Errorf("snapshot is missing the native architecture")
	}

	c := &Cache{
		Architecture: snap.Architecture,
		Files:        make(map[uint64]*RepositoryFile, len(snap.Files)),
		packages:     orderedmap.New(),
		pins:         make(map[*Package]string),
	}

	for _, sf := range snap.Files {
		if _, dup := c.Files[sf.ID]; dup {
			return nil, fmt.Errorf("duplicate repository file id %d", sf.ID)
		}
		prio := DefaultPriority
		if sf.NotSource {
			prio = StatusPriority
		}
		if sf.Priority != nil {
			prio = *sf.Priority
		}
		c.Files[sf.ID] = &RepositoryFile{
			ID:        sf.ID,
			Archive:   sf.Archive,
			Codename:  sf.Codename,
			Site:      sf.Site,
			Component: sf.Component,
			NotSource: sf.NotSource,
			Priority:  prio,
		}
	}

	for _, sp := range snap.Packages {
		if sp.Name == "" {
			return nil, fmt.Errorf("snapshot contains a package without a name")
		}
		p, err := c.addPackage(sp)
		if err != nil {
			return nil, err
		}
		key := p.Name + ":" + p.Architecture
		if _, dup := c.packages.Get(key); dup {
			return nil, fmt.Errorf("duplicate package %s", key)
		}
		c.packages.Set(key, p)
	}

	return c, nil
}

// addPackage builds one Package from its snapshot entry.
//
// Parameters:
//   - sp: The snapshot entry
//
// Returns:
//   - *Package: The materialized package
//   - error: Validation error (unknown file reference)
func (c *Cache) addPackage(sp snapshotPackage) (*Package, error) {
	arch := sp.Architecture
	if arch == "" {
		arch = c.Architecture
	}

	p := &Package{
		Name:         sp.Name,
		Architecture: arch,
		Selected:     sp.Selected,
		InstState:    sp.InstState,
		CurrentState: sp.CurrentState,
		native:       arch == c.Architecture,
	}

	for _, sv := range sp.Versions {
		v := &Version{ID: c.allocID(), Version: sv.Version}
		for _, sr := range sv.Files {
			f, ok := c.Files[sr.File]
			if !ok {
				return nil, fmt.Errorf("package %s version %s references unknown file %d", sp.Name, sv.Version, sr.File)
			}
			prio := f.Priority
			if sr.Priority != nil {
				prio = *sr.Priority
			}
			v.Files = append(v.Files, VersionFileRecord{File: f, Priority: prio})
		}
		p.Versions = append(p.Versions, v)
	}

	sortNewestFirst(p.Versions)

	if sp.Installed != "" {
		for _, v := range p.Versions {
			if v.Version == sp.Installed {
				p.Installed = v
				break
			}
		}
		if p.Installed == nil {
			// A locally installed version that no archive ever listed.
			// It is still part of the cache, backed only by the status
			// records, and must keep its place in the version ordering.
			v := &Version{
				ID:      c.allocID(),
				Version: sp.Installed,
				Files:   []VersionFileRecord{{File: c.statusFile(), Priority: StatusPriority}},
			}
			p.Versions = append(p.Versions, v)
			sortNewestFirst(p.Versions)
			p.Installed = v
		}
	}

	if sp.Candidate != "" {
		c.pins[p] = sp.Candidate
	}

	return p, nil
}

// statusFile returns the shared NotSource file representing local dpkg
// status records, creating it on first use.
//
// Returns:
//   - *RepositoryFile: The status repository file
func (c *Cache) statusFile() *RepositoryFile {
	for _, f := range c.Files {
		if f.NotSource && f.Archive == "now" {
			return f
		}
	}
	var id uint64
	for id = 1; ; id++ {
		if _, taken := c.Files[id]; !taken {
			break
		}
	}
	f := &RepositoryFile{
		ID:        id,
		Archive:   "now",
		NotSource: true,
		Priority:  StatusPriority,
	}
	c.Files[id] = f
	return f
}

// allocID hands out the next version identity.
//
// Returns:
//   - uint64: A fresh, unique version ID
func (c *Cache) allocID() uint64 {
	c.nextID++
	return c.nextID
}

// sortNewestFirst orders versions descending by Debian version comparison.
//
// The sort is stable: records whose strings compare equal (or fail to
// parse) keep their snapshot order, preserving distinct identities for
// textually identical versions from different origins.
//
// Parameters:
//   - versions: The version slice to sort in place
func sortNewestFirst(versions []*Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, erri := debver.NewVersion(versions[i].Version)
		vj, errj := debver.NewVersion(versions[j].Version)
		if erri != nil || errj != nil {
			return false
		}
		return vi.GreaterThan(vj)
	})
}

// Len returns the number of packages in the cache.
//
// Returns:
//   - int: Package count
func (c *Cache) Len() int {
	return len(c.packages.Keys())
}

// Packages returns all packages in the cache's natural enumeration order.
//
// Returns:
//   - []*Package: Packages in snapshot order
func (c *Cache) Packages() []*Package {
	keys := c.packages.Keys()
	out := make([]*Package, 0, len(keys))
	for _, k := range keys {
		v, _ := c.packages.Get(k)
		out = append(out, v.(*Package))
	}
	return out
}

// SortedPackages returns all packages ordered by name, then architecture.
//
// This is the ordering used when reporting on the whole cache.
//
// Returns:
//   - []*Package: Packages in name/architecture order
func (c *Cache) SortedPackages() []*Package {
	out := c.Packages()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Architecture < out[j].Architecture
	})
	return out
}

// Get looks up a package by name and architecture.
//
// Parameters:
//   - name: Package name
//   - arch: Package architecture
//
// Returns:
//   - *Package: The package, or nil when absent
func (c *Cache) Get(name, arch string) *Package {
	v, ok := c.packages.Get(name + ":" + arch)
	if !ok {
		return nil
	}
	return v.(*Package)
}
