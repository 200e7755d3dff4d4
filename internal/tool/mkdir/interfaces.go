package mkdir

import "os"

// dirCreator defines the filesystem operations needed to create directories.
type dirCreator interface {
	IsDir(path string) bool
	Mkdir(path string, perm os.FileMode) error
	IsWritable(path string) bool
}
