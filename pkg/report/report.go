// Package report drives the upgrade-state report: it selects packages,
// applies filters, classifies each package, and emits the per-package
// table blocks and summary lines.
package report

import (
	"fmt"
	"io"

	"github.com/ajxudir/aptshow/pkg/cache"
	"github.com/ajxudir/aptshow/pkg/classify"
	"github.com/ajxudir/aptshow/pkg/filtering"
	"github.com/ajxudir/aptshow/pkg/output"
	"github.com/ajxudir/aptshow/pkg/resolve"
	"github.com/ajxudir/aptshow/pkg/verbose"
)

// Options controls report filtering and output shape.
//
// Fields:
//   - UpgradesOnly: Suppress every state below AutomaticUpgrade
//   - Brief: Emit only the name portion of attributed summary lines
//   - AllVersions: Precede each summary with the full per-suite table
//   - NoHold: Suppress packages held back by dpkg selection state
//   - RegexAll: Report non-installed packages for pattern arguments too
type Options struct {
	UpgradesOnly bool
	Brief        bool
	AllVersions  bool
	NoHold       bool
	RegexAll     bool
}

// Summary aggregates what a report run emitted, for exit-code mapping.
//
// Fields:
//   - Reported: Number of summary lines emitted
//   - Upgradable: Number of those in an upgrade state
type Summary struct {
	Reported   int
	Upgradable int
}

// Reporter produces the upgrade-state report for a materialized cache.
//
// Fields:
//   - Cache: The materialized package cache
//   - Policy: Candidate/priority resolver
//   - Resolver: Distribution attribution resolver
//   - Out: Destination for report lines
//   - Opts: Filtering and output options
type Reporter struct {
	Cache    *cache.Cache
	Policy   cache.Policy
	Resolver *resolve.Resolver
	Out      io.Writer
	Opts     Options
}

// New creates a reporter.
//
// Parameters:
//   - c: The materialized package cache
//   - pol: Candidate/priority resolver
//   - res: Distribution attribution resolver
//   - out: Destination writer
//   - opts: Filtering and output options
//
// Returns:
//   - *Reporter: The configured reporter
func New(c *cache.Cache, pol cache.Policy, res *resolve.Resolver, out io.Writer, opts Options) *Reporter {
	return &Reporter{Cache: c, Policy: pol, Resolver: res, Out: out, Opts: opts}
}

// All reports on every package in the cache, ordered by name then
// architecture. Non-installed packages are suppressed.
//
// Returns:
//   - Summary: Counts of emitted lines
//   - error: Classification invariant violation or write error
func (r *Reporter) All() (Summary, error) {
	var sum Summary
	for _, p := range r.Cache.SortedPackages() {
		if err := r.showPackage(p, false, &sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// Patterns reports on the packages matching each argument, processed in
// argument order. Matches of one argument follow the cache's natural
// enumeration order.
//
// Literal name arguments include non-installed packages; pattern
// arguments only do so under RegexAll. An argument with no matches is
// not an error.
//
// Parameters:
//   - args: Package names or patterns
//
// Returns:
//   - Summary: Counts of emitted lines
//   - error: Invalid pattern, invariant violation, or write error
func (r *Reporter) Patterns(args []string) (Summary, error) {
	var sum Summary
	for _, arg := range args {
		m, err := filtering.ParseMatcher(arg)
		if err != nil {
			return sum, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		includeUninstalled := r.Opts.RegexAll || !filtering.IsPattern(arg)

		matched := 0
		for _, p := range r.Cache.Packages() {
			if !m.Match(p.Name) && !m.Match(p.FullName()) {
				continue
			}
			matched++
			if err := r.showPackage(p, includeUninstalled, &sum); err != nil {
				return sum, err
			}
		}
		if matched == 0 {
			verbose.Infof("No packages match %q", arg)
		}
	}
	return sum, nil
}

// showPackage applies the per-package filters, classifies, and emits the
// table block and summary line for one package.
//
// Parameters:
//   - p: The package to report on
//   - includeUninstalled: Whether a non-installed package is reported
//   - sum: Running counts, updated in place
//
// Returns:
//   - error: Classification invariant violation or write error
func (r *Reporter) showPackage(p *cache.Package, includeUninstalled bool, sum *Summary) error {
	if r.Opts.NoHold && p.IsHeld() {
		return nil
	}
	if p.Installed == nil && !includeUninstalled {
		return nil
	}

	candidate := r.Policy.Candidate(p)
	state, err := classify.Classify(p, p.Installed, candidate, p.Versions)
	if err != nil {
		return err
	}

	if r.Opts.UpgradesOnly && !state.IsUpgrade() {
		return nil
	}

	if r.Opts.AllVersions {
		if err := r.printAllVersions(p); err != nil {
			return err
		}
	}

	if err := r.printSummaryLine(p, state, candidate); err != nil {
		return err
	}

	sum.Reported++
	if state.IsUpgrade() {
		sum.Upgradable++
	}
	return nil
}

// printSummaryLine emits the state-dependent one-line summary.
//
// Parameters:
//   - p: The package
//   - state: Its classified upgrade state
//   - candidate: The policy-selected candidate, may be nil
//
// Returns:
//   - error: Write error
func (r *Reporter) printSummaryLine(p *cache.Package, state classify.State, candidate *cache.Version) error {
	switch state {
	case classify.NotInstalled:
		_, err := fmt.Fprintf(r.Out, "%s not installed\n", p.FullName())
		return err

	case classify.NotAvailable:
		_, err := fmt.Fprintf(r.Out, "%s %s installed: No available version in archive\n", p.FullName(), p.Installed.Version)
		return err

	case classify.AutomaticUpgrade:
		name := r.Resolver.DisplayName(p, candidate, r.Policy)
		return r.printAttributed(name, fmt.Sprintf(" upgradeable from %s to %s", p.Installed.Version, candidate.Version))

	case classify.UpToDate:
		name := r.Resolver.DisplayName(p, r.candidateOrInstalled(p, candidate), r.Policy)
		return r.printAttributed(name, fmt.Sprintf(" uptodate %s", p.Installed.Version))

	case classify.ManualUpgrade:
		newest := p.Versions[0]
		name := r.Resolver.DisplayName(p, newest, r.Policy)
		return r.printAttributed(name, fmt.Sprintf(" *manually* upgradeable from %s to %s", p.Installed.Version, newest.Version))

	case classify.Downgrade:
		name := r.Resolver.DisplayName(p, r.candidateOrInstalled(p, candidate), r.Policy)
		return r.printAttributed(name, fmt.Sprintf(" %s newer than version in archive", p.Installed.Version))
	}
	return nil
}

// printAttributed emits a distribution-attributed summary line, honoring
// brief mode by truncating to the name portion.
//
// Parameters:
//   - name: The distribution-qualified display name
//   - rest: The descriptive remainder of the line
//
// Returns:
//   - error: Write error
func (r *Reporter) printAttributed(name, rest string) error {
	if r.Opts.Brief {
		_, err := fmt.Fprintln(r.Out, name)
		return err
	}
	_, err := fmt.Fprintln(r.Out, name+rest)
	return err
}

// candidateOrInstalled falls back to the installed version when policy
// produced no candidate, so attribution always has a version to work on.
//
// Parameters:
//   - p: The package
//   - candidate: The policy-selected candidate, may be nil
//
// Returns:
//   - *cache.Version: A non-nil version for attribution
func (r *Reporter) candidateOrInstalled(p *cache.Package, candidate *cache.Version) *cache.Version {
	if candidate != nil {
		return candidate
	}
	return p.Installed
}

// printAllVersions emits the per-suite table block for one package: a
// header line describing the installed state, then one aligned row per
// (version, providing file) pair, skipping NotSource records.
//
// Parameters:
//   - p: The package
//
// Returns:
//   - error: Write error
func (r *Reporter) printAllVersions(p *cache.Package) error {
	tp := output.NewTablePrinter(4)

	if p.Installed != nil {
		sel, inst, cur := p.StateTriple()
		tp.AddLine(fmt.Sprintf("%s %s %s %s %s", p.FullName(), p.Installed.Version, sel, inst, cur))
	} else {
		tp.AddLine("Not installed")
	}

	for _, v := range p.Versions {
		for _, rec := range v.Files {
			if rec.File.NotSource {
				continue
			}
			tp.Insert(p.FullName(), v.Version, rec.File.Archive, rec.File.Site)
		}
	}

	return tp.Render(r.Out)
}
