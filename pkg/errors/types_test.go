package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitErrorError tests the behavior of ExitError.Error.
//
// It verifies:
//   - The message wins when set
//   - The underlying error is used otherwise
//   - A default message names the exit code as a last resort
func TestExitErrorError(t *testing.T) {
	assert.Equal(t, "bad flags", (&ExitError{Code: ExitFailure, Message: "bad flags"}).Error())
	assert.Equal(t, "boom", (&ExitError{Code: ExitFailure, Err: goerrors.New("boom")}).Error())
	assert.Equal(t, "exit code 2", (&ExitError{Code: ExitNoUpgrade}).Error())
}

// TestExitErrorUnwrap tests the errors.Is/As plumbing of ExitError.
//
// It verifies:
//   - Wrapped errors stay reachable through Unwrap
func TestExitErrorUnwrap(t *testing.T) {
	base := goerrors.New("base")
	err := NewExitError(ExitFailure, base)
	assert.True(t, goerrors.Is(err, base))
}

// TestGetExitCode tests the behavior of GetExitCode.
//
// It verifies:
//   - nil maps to success
//   - ExitError codes pass through, even when wrapped
//   - Any other error maps to failure
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitNoUpgrade, GetExitCode(NewExitErrorf(ExitNoUpgrade, "nothing to do")))
	assert.Equal(t, ExitFailure, GetExitCode(goerrors.New("plain")))

	t.Run("wrapped exit error", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewExitErrorf(ExitNoUpgrade, "inner"))
		assert.Equal(t, ExitNoUpgrade, GetExitCode(wrapped))
	})
}

// TestIsExitError tests the behavior of IsExitError.
//
// It verifies:
//   - ExitError values are recognized and returned
//   - Plain errors are not
func TestIsExitError(t *testing.T) {
	exitErr, ok := IsExitError(NewExitErrorf(ExitNoUpgrade, "nothing to do"))
	require.True(t, ok)
	assert.Equal(t, ExitNoUpgrade, exitErr.Code)

	_, ok = IsExitError(goerrors.New("plain"))
	assert.False(t, ok)
}

// TestInvariantError tests the behavior of InvariantError.
//
// It verifies:
//   - The message names the package and the impossible state
//   - IsInvariantError recognizes wrapped instances
func TestInvariantError(t *testing.T) {
	err := NewInvariantError("foo:i386", "no upgrade state matches")
	assert.Equal(t, "internal error: foo:i386: no upgrade state matches", err.Error())
	assert.True(t, IsInvariantError(err))
	assert.True(t, IsInvariantError(fmt.Errorf("wrap: %w", err)))
	assert.False(t, IsInvariantError(goerrors.New("plain")))
}
