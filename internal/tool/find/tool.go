package find

import (
	"context"

	"github.com/Cyclone1070/sysutil/internal/tool/service/git"
)

// FindTool handles the find operation.
type FindTool struct {
	fs         canonicalizer
	finder     *Finder
	loadIgnore ignoreLoader
}

// NewFindTool creates a new FindTool. gitFS is used to read .gitignore when a
// request sets skip_ignored.
func NewFindTool(fs canonicalizer, walker treeWalker, gitFS git.FileSystem) *FindTool {
	return &FindTool{
		fs:     fs,
		finder: NewFinder(fs, walker),
		loadIgnore: func(root string) (ignoreChecker, error) {
			return git.NewService(root, gitFS)
		},
	}
}

// Run executes a find request.
func (t *FindTool) Run(ctx context.Context, req *FindRequest) (*FindResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ignore ignoreChecker
	if req.SkipIgnored() {
		root, err := t.fs.Canonicalize(req.Path())
		if err != nil || !t.fs.IsDir(root) {
			return &FindResponse{Matches: []string{}}, nil
		}
		ignore, err = t.loadIgnore(root)
		if err != nil {
			return nil, &IgnoreLoadError{Root: root, Cause: err}
		}
	}

	matches := t.finder.find(req.Path(), req.MaxDepth(), req.TypeFilter(), req.Patterns(), ignore)
	return &FindResponse{Matches: matches, Count: len(matches)}, nil
}
