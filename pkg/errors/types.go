// Package errors provides exit-code aware error types for the aptshow CLI.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different outcomes.
const (
	// ExitSuccess indicates the report completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates an argument/configuration error or a fatal
	// cache load failure. No report was produced.
	ExitFailure = 1

	// ExitNoUpgrade indicates that a single literal package was queried
	// with --upgradeable and it is not upgradable. Scripts use this to
	// detect that no action is needed.
	ExitNoUpgrade = 2
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitNoUpgrade)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "failed to load cache snapshot",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 1=failure, 2=no upgrade needed.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitNoUpgrade)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitFailure, "cannot read %s", path)
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// InvariantError indicates that the classifier reached a state combination
// that the data model rules out.
//
// This is a modeling bug, never a user error: the run must abort rather
// than produce a misleading report.
//
// Fields:
//   - Package: Full name of the package being classified
//   - Detail: Description of the impossible state
type InvariantError struct {
	// Package is the full name of the package being classified.
	Package string

	// Detail describes the impossible state combination.
	Detail string
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message naming the package and detail
func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error: %s: %s", e.Package, e.Detail)
}

// NewInvariantError creates an InvariantError for the given package.
//
// Parameters:
//   - pkg: Full name of the package being classified
//   - detail: Description of the impossible state
//
// Returns:
//   - *InvariantError: New invariant error
func NewInvariantError(pkg, detail string) *InvariantError {
	return &InvariantError{Package: pkg, Detail: detail}
}

// IsInvariantError checks if err is an InvariantError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is an InvariantError
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
