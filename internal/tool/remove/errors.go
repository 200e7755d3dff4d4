package remove

import (
	"errors"
	"fmt"
)

// DeletionError records one failed unlink or rmdir.
type DeletionError struct {
	Path  string
	Dir   bool
	Cause error
}

func (e *DeletionError) Error() string {
	kind := "file"
	if e.Dir {
		kind = "directory"
	}
	return fmt.Sprintf("failed to delete %s %s: %v", kind, e.Path, e.Cause)
}
func (e *DeletionError) Unwrap() error { return e.Cause }
func (e *DeletionError) IOError() bool { return true }

// -- Sentinels --

var (
	ErrPathRequired = errors.New("at least one path is required")
	ErrEmptyPath    = errors.New("path must not be empty")
)
