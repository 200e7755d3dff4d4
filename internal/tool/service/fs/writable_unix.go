//go:build !windows

package fs

import "golang.org/x/sys/unix"

func isWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
