package remove

import "github.com/Cyclone1070/sysutil/internal/tool/tree"

// fileSystem defines the deletion primitives the remover needs.
type fileSystem interface {
	RemoveFile(path string) error
	RemoveDir(path string) error
	IsDir(path string) bool
	IsSymlink(path string) bool
}

// listingMerger expands rm arguments into one listing for recursive removal.
type listingMerger interface {
	Merge(paths []string) tree.Listing
}
