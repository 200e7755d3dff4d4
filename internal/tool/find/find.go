// Package find implements the find operation: a silent tree walk filtered by
// entry type and basename globs.
package find

import (
	"path/filepath"

	"github.com/samber/lo"

	"github.com/Cyclone1070/sysutil/internal/tool/pattern"
)

// TypeFilter selects which listing entries are candidates.
type TypeFilter int

const (
	TypeBoth TypeFilter = iota
	TypeFiles
	TypeDirs
)

// ParseType maps the -type argument ("f", "d", or empty) to a TypeFilter.
func ParseType(value string) (TypeFilter, error) {
	switch value {
	case "":
		return TypeBoth, nil
	case "f":
		return TypeFiles, nil
	case "d":
		return TypeDirs, nil
	}
	return TypeBoth, &InvalidTypeError{Value: value}
}

func (f TypeFilter) String() string {
	switch f {
	case TypeFiles:
		return "f"
	case TypeDirs:
		return "d"
	}
	return "both"
}

// Finder runs find queries. It keeps no state between calls.
type Finder struct {
	fs     canonicalizer
	walker treeWalker
}

// NewFinder creates a Finder.
func NewFinder(fs canonicalizer, walker treeWalker) *Finder {
	return &Finder{fs: fs, walker: walker}
}

// Find lists root down to maxDepth (0 is unbounded) and returns the entries
// selected by typeFilter whose basename matches at least one pattern. With no
// patterns every selected entry is returned. TypeBoth yields the directories
// followed by the files. Order is traversal order and filtering never
// reorders. A root that cannot be resolved, or that is not a directory, yields
// an empty result.
func (f *Finder) Find(root string, maxDepth int, typeFilter TypeFilter, patterns pattern.Set) []string {
	return f.find(root, maxDepth, typeFilter, patterns, nil)
}

func (f *Finder) find(root string, maxDepth int, typeFilter TypeFilter, patterns pattern.Set, ignore ignoreChecker) []string {
	dir, err := f.fs.Canonicalize(root)
	if err != nil || !f.fs.IsDir(dir) {
		return []string{}
	}

	listing := f.walker.Walk(dir, maxDepth, 0, true)

	var candidates []string
	switch typeFilter {
	case TypeFiles:
		candidates = listing.Files
	case TypeDirs:
		candidates = listing.Directories
	default:
		candidates = make([]string, 0, listing.Len())
		candidates = append(candidates, listing.Directories...)
		candidates = append(candidates, listing.Files...)
	}
	var isDir map[string]bool
	if ignore != nil {
		isDir = make(map[string]bool, len(listing.Directories))
		for _, d := range listing.Directories {
			isDir[d] = true
		}
	}

	return lo.Filter(candidates, func(path string, _ int) bool {
		if ignore != nil && ignore.ShouldIgnore(path, isDir[path]) {
			return false
		}
		return len(patterns) == 0 || patterns.MatchAny(filepath.Base(path))
	})
}
