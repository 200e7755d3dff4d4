package fs

import (
	"io"
	"os"
	"path/filepath"
)

// OSFileSystem implements the filesystem capability used by every tool on top
// of the local OS primitives. The mutating syscalls live in function fields so
// tests can inject failures.
type OSFileSystem struct {
	remove   func(name string) error
	mkdir    func(name string, perm os.FileMode) error
	writable func(path string) bool
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		remove:   os.Remove,
		mkdir:    os.Mkdir,
		writable: isWritable,
	}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// IsDir reports whether path resolves to a directory (symlinks followed).
func (fs *OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether path itself is a symbolic link.
func (fs *OSFileSystem) IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// ReadDirNames opens path as a directory and returns the names of its entries,
// excluding "." and "..". The handle is closed before returning.
func (fs *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, &OpenDirError{Path: path, Cause: err}
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, &ReadDirError{Path: path, Cause: err}
	}
	return names, nil
}

// Canonicalize returns the absolute path with every symlink resolved.
func (fs *OSFileSystem) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &CanonicalizeError{Path: path, Cause: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &CanonicalizeError{Path: path, Cause: err}
	}
	return resolved, nil
}

// RemoveFile unlinks a non-directory entry. Directories are refused.
func (fs *OSFileSystem) RemoveFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &RemoveError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return &RemoveError{Path: path, Cause: ErrIsDirectory}
	}
	if err := fs.remove(path); err != nil {
		return &RemoveError{Path: path, Cause: err}
	}
	return nil
}

// RemoveDir removes an empty directory. Non-directories are refused.
func (fs *OSFileSystem) RemoveDir(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &RemoveError{Path: path, Dir: true, Cause: err}
	}
	if !info.IsDir() {
		return &RemoveError{Path: path, Dir: true, Cause: ErrNotADirectory}
	}
	if err := fs.remove(path); err != nil {
		return &RemoveError{Path: path, Dir: true, Cause: err}
	}
	return nil
}

// Mkdir creates a single directory with the given permission bits.
func (fs *OSFileSystem) Mkdir(path string, perm os.FileMode) error {
	if err := fs.mkdir(path, perm); err != nil {
		return &MkdirError{Path: path, Mode: perm, Cause: err}
	}
	return nil
}

// IsWritable reports whether the current process may write into path.
func (fs *OSFileSystem) IsWritable(path string) bool {
	return fs.writable(path)
}

// Open opens a file for reading.
func (fs *OSFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// OpenWriter opens path for writing, creating it if needed. With appendMode the
// existing contents are kept, otherwise the file is truncated.
func (fs *OSFileSystem) OpenWriter(path string, appendMode bool) (io.WriteCloser, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.OpenFile(path, flag, 0o666)
}

// ReadFile reads the whole file at path.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Getenv returns the value of an environment variable.
func (fs *OSFileSystem) Getenv(key string) string {
	return os.Getenv(key)
}
