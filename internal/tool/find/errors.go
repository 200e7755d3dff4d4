package find

import (
	"errors"
	"fmt"
)

// InvalidTypeError is returned for a -type value other than "f" or "d".
type InvalidTypeError struct {
	Value string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type %q: expected \"f\" or \"d\"", e.Value)
}
func (e *InvalidTypeError) InvalidInput() bool { return true }

// NegativeDepthError is returned when max depth is negative.
type NegativeDepthError struct {
	Value int
}

func (e *NegativeDepthError) Error() string {
	return fmt.Sprintf("max depth cannot be negative: %d", e.Value)
}
func (e *NegativeDepthError) InvalidInput() bool { return true }

// DepthExceededError is returned when max depth is above the configured ceiling.
type DepthExceededError struct {
	Value int
	Max   int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("max depth %d exceeds maximum %d", e.Value, e.Max)
}
func (e *DepthExceededError) InvalidInput() bool { return true }

// IgnoreLoadError is returned when skip_ignored is set and .gitignore cannot be read.
type IgnoreLoadError struct {
	Root  string
	Cause error
}

func (e *IgnoreLoadError) Error() string {
	return fmt.Sprintf("failed to load ignore rules for %s: %v", e.Root, e.Cause)
}
func (e *IgnoreLoadError) Unwrap() error { return e.Cause }

// -- Sentinels --

var ErrEmptyPattern = errors.New("name pattern must not be empty")
