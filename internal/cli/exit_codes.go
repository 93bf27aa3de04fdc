package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the flashwin CLI
const (
	// ExitSuccess indicates the OS accepted the request
	ExitSuccess = 0

	// ExitNotFlashed indicates the OS rejected the request or no window was found
	ExitNotFlashed = 1

	// ExitUnsupported indicates the platform has no flash primitive
	ExitUnsupported = 2

	// ExitInvalidArguments indicates invalid arguments or configuration
	ExitInvalidArguments = 3
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitInvalidArguments
}
