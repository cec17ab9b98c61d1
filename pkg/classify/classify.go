// Package classify derives the upgrade state of a package from its
// installed version, candidate version, and full version list.
package classify

import (
	"github.com/ajxudir/aptshow/pkg/cache"
	"github.com/ajxudir/aptshow/pkg/errors"
)

// State is the upgrade state of a package. Exactly one state applies to
// any package.
type State int

// The six mutually exclusive upgrade states, ordered by rank. The
// upgrades-only filter keeps states ranked at AutomaticUpgrade or above.
const (
	// NotInstalled: the package has no installed version.
	NotInstalled State = iota

	// NotAvailable: installed, but no newer version is known and the
	// installed version has no surviving providing file. The package was
	// installed from a repository that no longer lists it.
	NotAvailable

	// UpToDate: the candidate equals the installed version and the
	// installed version is still fetchable.
	UpToDate

	// Downgrade: the only versions on offer are older than what is
	// installed.
	Downgrade

	// AutomaticUpgrade: policy selected a candidate different from the
	// installed version.
	AutomaticUpgrade

	// ManualUpgrade: a strictly newer version exists in the version list
	// but policy did not select it (e.g., held back by pinning).
	ManualUpgrade
)

// String returns the state's display name.
//
// Returns:
//   - string: Lower-case state name
func (s State) String() string {
	switch s {
	case NotInstalled:
		return "not-installed"
	case NotAvailable:
		return "not-available"
	case UpToDate:
		return "uptodate"
	case Downgrade:
		return "downgrade"
	case AutomaticUpgrade:
		return "upgradeable"
	case ManualUpgrade:
		return "manually-upgradeable"
	}
	return "invalid"
}

// IsUpgrade reports whether the state survives the upgrades-only filter.
//
// Returns:
//   - bool: true for AutomaticUpgrade and ManualUpgrade
func (s State) IsUpgrade() bool {
	return s >= AutomaticUpgrade
}

// Classify determines the upgrade state of a package.
//
// Evaluation order encodes priority among overlapping conditions and
// mirrors the reporting semantics exactly:
//  1. No installed version: NotInstalled.
//  2. Only one version is known and the installed version has no
//     surviving source record: NotAvailable.
//  3. A candidate exists whose identity differs from installed:
//     AutomaticUpgrade.
//  4. The installed version still has a source record: UpToDate.
//  5. The head of the version list (newest) differs from installed by
//     identity: ManualUpgrade.
//  6. An older version follows the installed one in the list: Downgrade.
//
// Identity comparisons use version IDs, never strings, so textually equal
// versions from different origins are not conflated. The version list is
// assumed newest-first, which the cache adapter enforces at load time.
//
// Parameters:
//   - p: The package being classified
//   - installed: The installed version, or nil
//   - candidate: The policy-selected candidate, or nil
//   - versions: All known versions, newest first
//
// Returns:
//   - State: Exactly one of the six states
//   - error: InvariantError when no state matches, which indicates a
//     modeling bug; the caller must abort rather than report
func Classify(p *cache.Package, installed, candidate *cache.Version, versions []*cache.Version) (State, error) {
	if installed == nil {
		return NotInstalled, nil
	}

	if len(versions) <= 1 && !installed.HasSourceRecord() {
		return NotAvailable, nil
	}

	if candidate != nil && candidate.ID != installed.ID {
		return AutomaticUpgrade, nil
	}

	if installed.HasSourceRecord() {
		return UpToDate, nil
	}

	if len(versions) > 0 && versions[0].ID != installed.ID {
		return ManualUpgrade, nil
	}

	for i, v := range versions {
		if v.ID == installed.ID && i < len(versions)-1 {
			return Downgrade, nil
		}
	}

	return NotInstalled, errors.NewInvariantError(p.FullName(), "no upgrade state matches")
}
