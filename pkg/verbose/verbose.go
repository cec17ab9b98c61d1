// Package verbose provides debug logging for troubleshooting cache and
// source-list resolution.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
//
// Returns:
//   - io.Writer: The currently configured output writer
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// CacheLoaded logs cache snapshot statistics if enabled.
//
// Parameters:
//   - path: The snapshot file that was loaded
//   - packages: Number of packages in the snapshot
//   - files: Number of repository files in the snapshot
func CacheLoaded(path string, packages, files int) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Cache loaded: %s (%d packages, %d repository files)\n", path, packages, files)
	}
}

// SourcesLoaded logs source-list statistics if enabled.
//
// Parameters:
//   - path: The sources file that was loaded
//   - entries: Number of usable entries parsed from it
func SourcesLoaded(path string, entries int) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Sources loaded: %s (%d entries)\n", path, entries)
	}
}

// DistributionResolved logs a distribution attribution result if enabled.
//
// Parameters:
//   - fileID: Identity of the repository file that was resolved
//   - name: The resolved distribution name (may be empty)
//   - cached: Whether the result came from the memo cache
func DistributionResolved(fileID uint64, name string, cached bool) {
	if !IsEnabled() {
		return
	}
	if cached {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Distribution for file %d: %q (cache hit)\n", fileID, name)
	} else {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Distribution for file %d: %q (source-list scan)\n", fileID, name)
	}
}
