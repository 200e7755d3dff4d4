package fs

import (
	"errors"
	"fmt"
	"os"
)

// -- Errors --

// OpenDirError is returned when a directory cannot be opened for listing.
type OpenDirError struct {
	Path  string
	Cause error
}

func (e *OpenDirError) Error() string {
	return fmt.Sprintf("could not open dir %s: %v", e.Path, e.Cause)
}
func (e *OpenDirError) Unwrap() error { return e.Cause }
func (e *OpenDirError) IOError() bool { return true }

// ReadDirError is returned when reading entries of an opened directory fails.
type ReadDirError struct {
	Path  string
	Cause error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("could not read dir %s: %v", e.Path, e.Cause)
}
func (e *ReadDirError) Unwrap() error { return e.Cause }
func (e *ReadDirError) IOError() bool { return true }

type CanonicalizeError struct {
	Path  string
	Cause error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("failed to canonicalize %s: %v", e.Path, e.Cause)
}
func (e *CanonicalizeError) Unwrap() error { return e.Cause }

// RemoveError is returned by RemoveFile (Dir=false) and RemoveDir (Dir=true).
type RemoveError struct {
	Path  string
	Dir   bool
	Cause error
}

func (e *RemoveError) Error() string {
	op := "unlink"
	if e.Dir {
		op = "rmdir"
	}
	return fmt.Sprintf("%s %s: %v", op, e.Path, e.Cause)
}
func (e *RemoveError) Unwrap() error { return e.Cause }
func (e *RemoveError) IOError() bool { return true }

type MkdirError struct {
	Path  string
	Mode  os.FileMode
	Cause error
}

func (e *MkdirError) Error() string {
	return fmt.Sprintf("mkdir %s (mode %v): %v", e.Path, e.Mode, e.Cause)
}
func (e *MkdirError) Unwrap() error { return e.Cause }
func (e *MkdirError) IOError() bool { return true }

// -- Sentinels --

var (
	ErrIsDirectory   = errors.New("is a directory")
	ErrNotADirectory = errors.New("not a directory")
)
