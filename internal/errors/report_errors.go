package errors

import (
	"errors"
	"fmt"
)

// MissingInputError is returned when the benchmark results file does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s does not exist.", e.Path)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// MalformedInputError is returned when the input is not a JSON list of benchmark records.
type MalformedInputError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed benchmark results: %v", e.Err)
	}
	return fmt.Sprintf("malformed benchmark results in %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// WriteError is returned when a report artifact cannot be written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsMissingInput reports whether err (or anything it wraps) is a MissingInputError.
func IsMissingInput(err error) bool {
	var target *MissingInputError
	return errors.As(err, &target)
}

// IsMalformedInput reports whether err is a MalformedInputError.
func IsMalformedInput(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// IsWriteError reports whether err is a WriteError.
func IsWriteError(err error) bool {
	var target *WriteError
	return errors.As(err, &target)
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsMalformedInput(err):
		return 2
	case IsWriteError(err):
		return 3
	default:
		return 1
	}
}
