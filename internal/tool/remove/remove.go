// Package remove implements rm: best-effort deletion of files and directory
// trees with an aggregate outcome.
package remove

import (
	"slices"

	"github.com/Cyclone1070/sysutil/internal/tool/tree"
)

// Result is the outcome of a removal batch.
type Result struct {
	Removed  []string
	Failures []*DeletionError
}

// OK reports whether every attempted deletion succeeded.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

func (r *Result) record(path string, dir bool, err error) {
	if err != nil {
		r.Failures = append(r.Failures, &DeletionError{Path: path, Dir: dir, Cause: err})
		return
	}
	r.Removed = append(r.Removed, path)
}

// Remover deletes paths. It keeps no state between calls.
type Remover struct {
	fs fileSystem
}

// NewRemover creates a Remover over fs.
func NewRemover(fs fileSystem) *Remover {
	return &Remover{fs: fs}
}

// RemoveListing unlinks every file of listing, then removes every directory in
// descending lexicographic order so that children go before their parents.
// A failure never stops the remaining deletions.
func (r *Remover) RemoveListing(listing tree.Listing) *Result {
	result := &Result{}

	for _, file := range listing.Files {
		result.record(file, false, r.fs.RemoveFile(file))
	}

	for _, dir := range DeletionOrder(listing.Directories) {
		result.record(dir, true, r.fs.RemoveDir(dir))
	}

	return result
}

// RemovePaths deletes each path with rmdir when it is a real directory and
// unlink otherwise, without descending into anything.
func (r *Remover) RemovePaths(paths []string) *Result {
	result := &Result{}
	for _, path := range paths {
		if r.fs.IsDir(path) && !r.fs.IsSymlink(path) {
			result.record(path, true, r.fs.RemoveDir(path))
			continue
		}
		result.record(path, false, r.fs.RemoveFile(path))
	}
	return result
}

// DeletionOrder returns a reverse-sorted copy of dirs. A path always sorts
// after its own prefix, so every directory precedes its ancestors.
func DeletionOrder(dirs []string) []string {
	ordered := slices.Clone(dirs)
	slices.Sort(ordered)
	slices.Reverse(ordered)
	return ordered
}
