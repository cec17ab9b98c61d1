package resolve

import (
	"strings"

	"github.com/ajxudir/aptshow/pkg/cache"
	"github.com/ajxudir/aptshow/pkg/sources"
	"github.com/ajxudir/aptshow/pkg/verbose"
)

// Resolver attributes repository files to the distribution they were
// configured from.
//
// Repository files alone often carry generic archive labels; scanning the
// explicit source configuration recovers the user-meaningful suite name
// (e.g., "bookworm" instead of "stable") when one matches, and falls back
// to the file's own attributes otherwise. Results are memoized per file
// identity for the lifetime of the run.
//
// Fields:
//   - Sources: The parsed source-list configuration; may be empty
type Resolver struct {
	Sources *sources.List

	memo *DistCache
}

// NewResolver creates a resolver over the given source list.
//
// Parameters:
//   - list: The source-list configuration; nil is treated as empty
//
// Returns:
//   - *Resolver: The resolver with a fresh memo cache
func NewResolver(list *sources.List) *Resolver {
	if list == nil {
		list = &sources.List{}
	}
	return &Resolver{Sources: list, memo: NewDistCache()}
}

// Resolve returns the distribution name for a repository file.
//
// It performs the following operations:
//   - Step 1: Returns the memoized name on a cache hit
//   - Step 2: Scans source-list entries and their index files for one
//     that owns the file
//   - Step 3: Truncates the entry's distribution at the first "/" and
//     accepts the match only if the result equals the file's archive or
//     codename attribute
//   - Step 4: Falls back to the file's archive, then codename, then the
//     empty string, memoizing whichever value is returned
//
// Parameters:
//   - f: The repository file to attribute
//
// Returns:
//   - string: The distribution name, possibly empty
func (r *Resolver) Resolve(f *cache.RepositoryFile) string {
	if name, ok := r.memo.Lookup(f.ID); ok {
		verbose.DistributionResolved(f.ID, name, true)
		return name
	}

	name := r.scan(f)
	r.memo.Insert(f.ID, name)
	verbose.DistributionResolved(f.ID, name, false)
	return name
}

// scan performs the uncached source-list lookup for a file.
//
// Parameters:
//   - f: The repository file to attribute
//
// Returns:
//   - string: The distribution name, possibly empty
func (r *Resolver) scan(f *cache.RepositoryFile) string {
	for _, entry := range r.Sources.Entries {
		for _, idx := range entry.IndexFiles() {
			if !idx.Owns(f) {
				continue
			}
			name := BaseDistribution(entry.Distribution)
			// Cross-validation: an entry sharing index files with an
			// unrelated suite must not win the attribution.
			if name != "" && (name == f.Archive || name == f.Codename) {
				return name
			}
		}
	}

	if f.Archive != "" {
		return f.Archive
	}
	if f.Codename != "" {
		return f.Codename
	}
	return ""
}

// BaseDistribution truncates a declared distribution string at the first
// "/", collapsing suite variants like "stable/updates" to "stable".
//
// Parameters:
//   - dist: The declared distribution string
//
// Returns:
//   - string: The base suite name
func BaseDistribution(dist string) string {
	if idx := strings.IndexByte(dist, '/'); idx >= 0 {
		return dist[:idx]
	}
	return dist
}
