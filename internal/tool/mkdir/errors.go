package mkdir

import (
	"errors"
	"fmt"
)

// CreateError records one directory that could not be created.
type CreateError struct {
	Path  string
	Cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}
func (e *CreateError) Unwrap() error { return e.Cause }
func (e *CreateError) IOError() bool { return true }

// NotWritableError is the cause recorded when a parent directory does not
// accept new entries.
type NotWritableError struct {
	Path string
}

func (e *NotWritableError) Error() string {
	return fmt.Sprintf("parent directory %s is not writable", e.Path)
}
func (e *NotWritableError) IOError() bool { return true }

// InvalidModeError is returned when the -m value is not an octal permission.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: expected octal permission bits such as 0755", e.Value)
}
func (e *InvalidModeError) InvalidInput() bool { return true }

// -- Sentinels --

var (
	ErrPathRequired = errors.New("at least one path is required")
	ErrEmptyPath    = errors.New("path must not be empty")
)
