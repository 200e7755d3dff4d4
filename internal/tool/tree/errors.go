package tree

import (
	"errors"
	"fmt"
)

// DirectoryOpenError is reported through the warning channel when a directory
// cannot be listed. It never aborts a walk.
type DirectoryOpenError struct {
	Path  string
	Cause error
}

// Error names the path once. Filesystem errors wrapped in Cause usually
// carry the path themselves, so only the innermost cause is printed.
func (e *DirectoryOpenError) Error() string {
	return fmt.Sprintf("could not open dir %s: %v", e.Path, innermost(e.Cause))
}
func (e *DirectoryOpenError) Unwrap() error { return e.Cause }
func (e *DirectoryOpenError) IOError() bool { return true }

func innermost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
