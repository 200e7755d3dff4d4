package tree

import "github.com/samber/lo"

// Merger combines the listings of several path arguments into one.
type Merger struct {
	fs     fileSystem
	walker *Walker
}

// NewMerger creates a Merger that expands directory arguments with walker.
func NewMerger(fs fileSystem, walker *Walker) *Merger {
	return &Merger{fs: fs, walker: walker}
}

// Merge walks every directory argument (symlinks excluded) without a depth
// bound and concatenates the listings in argument order. Any other argument,
// including a missing path, is added to Files unless the exact path is already
// there.
//
// Directories reached from two different arguments are kept twice; only the
// Files entries of non-directory arguments are deduplicated.
func (m *Merger) Merge(paths []string) Listing {
	var merged Listing
	for _, path := range paths {
		if m.fs.IsDir(path) && !m.fs.IsSymlink(path) {
			merged.Append(m.walker.Walk(path, 0, 0, false))
			continue
		}
		if !lo.Contains(merged.Files, path) {
			merged.Files = append(merged.Files, path)
		}
	}
	return merged
}
