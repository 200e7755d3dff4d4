package tree

// fileSystem defines the filesystem operations the walker and merger need.
type fileSystem interface {
	ReadDirNames(path string) ([]string, error)
	Canonicalize(path string) (string, error)
	IsDir(path string) bool
	IsSymlink(path string) bool
}

// warner is the non-fatal warning channel. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type warner interface {
	Warn(msg interface{}, keyvals ...interface{})
}
