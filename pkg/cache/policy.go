package cache

import (
	debver "github.com/knqyf263/go-deb-version"
)

// Policy selects candidate versions and assigns record priorities.
//
// The policy is an external collaborator from the classifier's point of
// view; the snapshot-backed implementation below covers the pin semantics
// the snapshot format can express. Tests substitute their own.
type Policy interface {
	// Candidate returns the version that would be installed if an
	// upgrade were performed now, or nil when no version satisfies
	// policy.
	//
	// Parameters:
	//   - p: The package to resolve
	//
	// Returns:
	//   - *Version: The candidate version, or nil
	Candidate(p *Package) *Version

	// Priority returns the pin priority of a version-file record.
	//
	// Parameters:
	//   - rec: The record to rank
	//
	// Returns:
	//   - int: The record's priority
	Priority(rec VersionFileRecord) int
}

// SnapshotPolicy resolves candidates from snapshot data.
//
// An explicit per-package candidate pin in the snapshot wins outright.
// Otherwise the candidate is the version whose best record priority is
// highest; ties go to the earlier (newer) entry in the version list.
// Versions below the installed one are never selected: the snapshot
// format cannot express the >1000 pin priorities APT requires to force a
// downgrade, so an older archived version must not become the candidate.
type SnapshotPolicy struct {
	cache *Cache
}

// NewSnapshotPolicy creates a policy backed by the given cache.
//
// Parameters:
//   - c: The materialized cache
//
// Returns:
//   - *SnapshotPolicy: The policy
func NewSnapshotPolicy(c *Cache) *SnapshotPolicy {
	return &SnapshotPolicy{cache: c}
}

// Candidate returns the policy-selected version for a package.
//
// Parameters:
//   - p: The package to resolve
//
// Returns:
//   - *Version: The candidate version, or nil when the package has no versions
func (s *SnapshotPolicy) Candidate(p *Package) *Version {
	if pin, ok := s.cache.pins[p]; ok {
		for _, v := range p.Versions {
			if v.Version == pin {
				return v
			}
		}
	}

	var best *Version
	bestPrio := 0
	for _, v := range p.Versions {
		if p.Installed != nil && v != p.Installed && olderThan(v, p.Installed) {
			continue
		}
		prio := s.versionPriority(v)
		if best == nil || prio > bestPrio {
			best = v
			bestPrio = prio
		}
	}
	if best == nil {
		return p.Installed
	}
	return best
}

// Priority returns the pin priority of a version-file record.
//
// Parameters:
//   - rec: The record to rank
//
// Returns:
//   - int: The record's priority as loaded from the snapshot
func (s *SnapshotPolicy) Priority(rec VersionFileRecord) int {
	return rec.Priority
}

// versionPriority returns the best record priority of a version.
//
// Versions without any record rank at zero, below the status priority,
// so they are never picked over a provided version.
//
// Parameters:
//   - v: The version to rank
//
// Returns:
//   - int: The highest record priority
func (s *SnapshotPolicy) versionPriority(v *Version) int {
	prio := 0
	for _, rec := range v.Files {
		if rec.Priority > prio {
			prio = rec.Priority
		}
	}
	return prio
}

// olderThan reports whether a ranks strictly below b by Debian version
// comparison. Unparseable versions are never considered older, so they
// stay eligible for selection.
//
// Parameters:
//   - a: The version being tested
//   - b: The version to compare against
//
// Returns:
//   - bool: true if a is strictly older than b
func olderThan(a, b *Version) bool {
	va, errA := debver.NewVersion(a.Version)
	vb, errB := debver.NewVersion(b.Version)
	if errA != nil || errB != nil {
		return false
	}
	return vb.GreaterThan(va)
}

// Verify interface implementation.
var _ Policy = (*SnapshotPolicy)(nil)
