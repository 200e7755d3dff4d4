package cat

import (
	"errors"
	"fmt"
)

// InputOpenError is reported through the warning channel for an input that
// cannot be opened or read. The input is skipped.
type InputOpenError struct {
	Path  string
	Cause error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Cause)
}
func (e *InputOpenError) Unwrap() error { return e.Cause }
func (e *InputOpenError) IOError() bool { return true }

// OutputOpenError is returned when the redirect target cannot be opened.
type OutputOpenError struct {
	Path  string
	Cause error
}

func (e *OutputOpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Cause)
}
func (e *OutputOpenError) Unwrap() error { return e.Cause }
func (e *OutputOpenError) IOError() bool { return true }

// WriteError is returned when writing to or closing the redirect target fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }
func (e *WriteError) IOError() bool { return true }

// -- Sentinels --

var (
	ErrEmptyPath           = errors.New("file path must not be empty")
	ErrAppendWithoutOutput = errors.New("append requires an output file")
)
