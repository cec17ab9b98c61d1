// Package resolve maps repository files to distribution names and builds
// the distribution-qualified display names used in report summary lines.
package resolve

// DistCache memoizes distribution attribution per repository-file identity.
//
// The cache lives for one report run. Each identity is written at most
// once; the empty string is a valid cached result (attribution failed and
// will keep failing for the same configuration).
type DistCache struct {
	names map[uint64]string
}

// NewDistCache creates an empty attribution cache.
//
// Returns:
//   - *DistCache: The empty cache
func NewDistCache() *DistCache {
	return &DistCache{names: make(map[uint64]string)}
}

// Lookup returns the memoized name for a file identity.
//
// Parameters:
//   - id: Repository-file identity
//
// Returns:
//   - string: The memoized distribution name (possibly empty)
//   - bool: true on a cache hit
func (d *DistCache) Lookup(id uint64) (string, bool) {
	name, ok := d.names[id]
	return name, ok
}

// Insert memoizes the name for a file identity.
//
// Parameters:
//   - id: Repository-file identity
//   - name: The resolved distribution name (possibly empty)
func (d *DistCache) Insert(id uint64, name string) {
	d.names[id] = name
}

// Len returns the number of memoized identities.
//
// Returns:
//   - int: Entry count
func (d *DistCache) Len() int {
	return len(d.names)
}
