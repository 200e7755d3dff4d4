// Package tree walks directory trees into flat Listings and merges the
// listings of several roots.
package tree

import (
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Walker produces Listings. It holds no per-walk state and is safe to reuse
// sequentially.
type Walker struct {
	fs     fileSystem
	warn   warner
	locale language.Tag
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithLocale sets the collation locale used to order siblings.
func WithLocale(tag language.Tag) WalkerOption {
	return func(w *Walker) {
		w.locale = tag
	}
}

// NewWalker creates a Walker. warn receives a DirectoryOpenError for every
// directory that cannot be listed during non-silent walks.
func NewWalker(fs fileSystem, warn warner, opts ...WalkerOption) *Walker {
	if fs == nil {
		panic("fs is required")
	}
	if warn == nil {
		panic("warn is required")
	}
	w := &Walker{fs: fs, warn: warn, locale: language.Und}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk lists root recursively. maxDepth bounds recursion (0 is unbounded) and
// currentDepth is the depth root sits at. Children of each directory are
// visited in natural order; directories are expanded while
// currentDepth < maxDepth, everything else (files, symlinks, directories past
// the limit) is recorded in Files.
//
// A root that cannot be opened yields a Listing holding only root. Unless
// silent is set, the failure is also sent to the warning channel.
func (w *Walker) Walk(root string, maxDepth, currentDepth int, silent bool) Listing {
	col := collate.New(w.locale, collate.Numeric)
	return w.walk(root, maxDepth, currentDepth, silent, col)
}

func (w *Walker) walk(root string, maxDepth, currentDepth int, silent bool, col *collate.Collator) Listing {
	dir := w.canonical(root)
	listing := Listing{Directories: []string{dir}}

	names, err := w.fs.ReadDirNames(dir)
	if err != nil {
		if !silent {
			openErr := &DirectoryOpenError{Path: dir, Cause: err}
			w.warn.Warn("could not open dir", "path", dir, "err", openErr)
		}
		return listing
	}

	names = slices.DeleteFunc(names, func(name string) bool {
		return name == "." || name == ".."
	})
	sortNatural(names, col)

	expand := maxDepth == 0 || currentDepth < maxDepth
	for _, name := range names {
		path := filepath.Join(dir, name)
		if expand && w.fs.IsDir(path) && !w.fs.IsSymlink(path) {
			listing.Append(w.walk(path, maxDepth, currentDepth+1, silent, col))
			continue
		}
		listing.Files = append(listing.Files, path)
	}

	return listing
}

// canonical resolves root for recording. Paths that cannot be resolved (they
// usually do not exist) are made absolute and cleaned instead.
func (w *Walker) canonical(root string) string {
	if resolved, err := w.fs.Canonicalize(root); err == nil {
		return resolved
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return filepath.Clean(root)
}

// sortNatural orders names so that embedded numbers compare by value
// ("file2" < "file10"). Names that collate equal fall back to byte order.
func sortNatural(names []string, col *collate.Collator) {
	slices.SortFunc(names, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
