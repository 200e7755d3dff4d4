package which

import "os"

// fileSystem defines the lookups needed to resolve a program on the search path.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Getenv(key string) string
}
