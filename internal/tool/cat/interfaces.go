package cat

import "io"

// fileOpener defines the filesystem operations needed to concatenate files.
type fileOpener interface {
	Open(path string) (io.ReadCloser, error)
	OpenWriter(path string, appendMode bool) (io.WriteCloser, error)
}

type warner interface {
	Warn(msg interface{}, keyvals ...interface{})
}
