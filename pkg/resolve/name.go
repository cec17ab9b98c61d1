package resolve

import (
	"github.com/ajxudir/aptshow/pkg/cache"
)

// DisplayName returns the distribution-qualified display name for one
// version of a package.
//
// It performs the following operations:
//   - Step 1: Iterates the version's file records, skipping NotSource ones
//   - Step 2: Gates each record on priority: a record is considered only
//     when no name has been chosen yet or its priority is strictly higher
//     than the current best (first-seen wins on equal priority)
//   - Step 3: Resolves the record's distribution; a non-empty result makes
//     "<fullname>/<distribution>" the current best name
//   - Step 4: Falls back to the bare full name when no record yields a
//     non-empty distribution
//
// Parameters:
//   - p: The package being named
//   - v: The version whose providing files attribute the name
//   - pol: Policy used to rank the version's records
//
// Returns:
//   - string: "<fullname>/<distribution>" or the bare full name
func (r *Resolver) DisplayName(p *cache.Package, v *cache.Version, pol cache.Policy) string {
	full := p.FullName()
	name := ""
	bestPrio := 0

	for _, rec := range v.Files {
		if rec.File.NotSource {
			continue
		}
		if name != "" && bestPrio >= pol.Priority(rec) {
			continue
		}
		if dist := r.Resolve(rec.File); dist != "" {
			name = full + "/" + dist
			bestPrio = pol.Priority(rec)
		}
	}

	if name == "" {
		return full
	}
	return name
}
