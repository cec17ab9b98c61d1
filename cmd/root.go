// Package cmd implements the command-line interface for aptshow.
// It wires the cache snapshot, source list, and report driver together
// and maps report outcomes to process exit codes.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/aptshow/pkg/cache"
	"github.com/ajxudir/aptshow/pkg/errors"
	"github.com/ajxudir/aptshow/pkg/filtering"
	"github.com/ajxudir/aptshow/pkg/report"
	"github.com/ajxudir/aptshow/pkg/resolve"
	"github.com/ajxudir/aptshow/pkg/sources"
	"github.com/ajxudir/aptshow/pkg/verbose"
)

// Default locations of the materialized cache and the source list.
const (
	DefaultCachePath   = "/var/cache/aptshow/cache.yaml"
	DefaultSourcesPath = "/etc/apt/sources.list"
)

var exitFunc = os.Exit

var (
	verboseFlag     bool
	upgradeableFlag bool
	briefFlag       bool
	allVersionsFlag bool
	regexAllFlag    bool
	noHoldFlag      bool
	cachePathFlag   string
	sourcesPathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "aptshow [package|pattern ...]",
	Short: "Show available versions of installed packages",
	Long: `Report, for every package known to the cache, whether the installed
version is current, upgradable, downgraded or unavailable, and which
distribution the candidate version comes from.

Without arguments, every installed package is reported. With arguments,
only matching packages are reported; glob patterns (lib*) and regex
patterns (~^lib) are supported.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: runShow,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Argument/configuration error or fatal cache load failure
//   - 2: Single literal package queried with --upgradeable and it is not
//     upgradable (no action needed)
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		if exitErr, ok := errors.IsExitError(err); !ok || exitErr.Code != errors.ExitNoUpgrade {
			fmt.Fprintln(os.Stderr, "E:", err)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.Flags().BoolVarP(&upgradeableFlag, "upgradeable", "u", false, "Show only upgradeable packages")
	rootCmd.Flags().BoolVarP(&briefFlag, "brief", "b", false, "Show package names only")
	rootCmd.Flags().BoolVarP(&allVersionsFlag, "all-versions", "a", false, "Show the full per-suite version table for each package")
	rootCmd.Flags().BoolVarP(&regexAllFlag, "regex-all", "R", false, "Report non-installed packages for pattern arguments too")
	rootCmd.Flags().BoolVarP(&noHoldFlag, "no-hold", "n", false, "Suppress packages on hold")
	rootCmd.Flags().StringVar(&cachePathFlag, "cache", DefaultCachePath, "Path to the cache snapshot")
	rootCmd.Flags().StringVar(&sourcesPathFlag, "sources", DefaultSourcesPath, "Path to the sources list")

	rootCmd.AddCommand(versionCmd)
}

// runShow executes the report: validates flag combinations, loads the
// cache and source list, and runs the report driver.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Package names or patterns (empty to report on everything)
//
// Returns:
//   - error: ExitError with the appropriate code on failure
func runShow(cmd *cobra.Command, args []string) error {
	// Conflicting flags abort before any cache access.
	if noHoldFlag && len(args) > 0 {
		return errors.NewExitErrorf(errors.ExitFailure, "cannot specify -n|--no-hold with a package name")
	}
	if regexAllFlag && len(args) == 0 {
		return errors.NewExitErrorf(errors.ExitFailure, "cannot specify -R|--regex-all without a pattern")
	}

	c, err := cache.Load(cachePathFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	list, err := sources.LoadFile(sourcesPathFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	opts := report.Options{
		UpgradesOnly: upgradeableFlag,
		Brief:        briefFlag,
		AllVersions:  allVersionsFlag,
		NoHold:       noHoldFlag,
		RegexAll:     regexAllFlag,
	}
	rep := report.New(c, cache.NewSnapshotPolicy(c), resolve.NewResolver(list), cmd.OutOrStdout(), opts)

	var sum report.Summary
	if len(args) == 0 {
		sum, err = rep.All()
	} else {
		sum, err = rep.Patterns(args)
	}
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	// Scripting contract: a single literal package queried under
	// --upgradeable that yields no upgrade signals "nothing to do".
	if upgradeableFlag && len(args) == 1 && !filtering.IsPattern(args[0]) && sum.Upgradable == 0 {
		return errors.NewExitErrorf(errors.ExitNoUpgrade, "%s: no upgrade available", args[0])
	}

	verbose.Infof("Report complete: %d lines, %d upgradable", sum.Reported, sum.Upgradable)
	return nil
}
