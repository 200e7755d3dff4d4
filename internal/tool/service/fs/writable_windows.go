//go:build windows

package fs

import "os"

// Windows has no access(2); the owner write bit mirrors the read-only attribute.
func isWritable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
