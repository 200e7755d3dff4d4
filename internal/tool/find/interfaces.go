package find

import "github.com/Cyclone1070/sysutil/internal/tool/tree"

type canonicalizer interface {
	Canonicalize(path string) (string, error)
	IsDir(path string) bool
}

type treeWalker interface {
	Walk(root string, maxDepth, currentDepth int, silent bool) tree.Listing
}

// ignoreChecker reports whether an absolute path under the search root is
// excluded by the root's .gitignore.
type ignoreChecker interface {
	ShouldIgnore(path string, isDir bool) bool
}

// ignoreLoader builds an ignoreChecker for a canonical search root.
type ignoreLoader func(root string) (ignoreChecker, error)
