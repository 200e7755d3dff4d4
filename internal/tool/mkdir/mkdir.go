// Package mkdir creates directories, optionally with their missing parents.
package mkdir

import (
	"context"
	"os"
	"path/filepath"
	"slices"
)

// Result is the outcome of one mkdir operation.
type Result struct {
	Created  []string
	Failures []*CreateError
}

// OK reports whether every requested directory was created.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

func (r *Result) fail(path string, cause error) {
	r.Failures = append(r.Failures, &CreateError{Path: path, Cause: cause})
}

// MkdirTool handles the mkdir operation.
type MkdirTool struct {
	fs dirCreator
}

// NewMkdirTool creates a new MkdirTool with injected dependencies.
func NewMkdirTool(fs dirCreator) *MkdirTool {
	return &MkdirTool{fs: fs}
}

// Run creates every requested directory. A failure on one path does not stop
// the others; it is reported through MkdirResponse.Success.
func (t *MkdirTool) Run(ctx context.Context, req *MkdirRequest) (*MkdirResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, path := range req.Paths() {
		if req.Parents() {
			t.createAll(path, req.Mode(), result)
			continue
		}
		if err := t.fs.Mkdir(path, req.Mode()); err != nil {
			result.fail(path, err)
			continue
		}
		result.Created = append(result.Created, path)
	}

	resp := &MkdirResponse{
		Success: result.OK(),
		Created: result.Created,
	}
	for _, f := range result.Failures {
		resp.Failed = append(resp.Failed, f.Path)
		resp.Failures = append(resp.Failures, f.Error())
	}
	return resp, nil
}

// createAll creates path and every missing ancestor from the top down. The
// chain stops at the first component that cannot be created.
func (t *MkdirTool) createAll(path string, mode os.FileMode, result *Result) {
	missing := MissingAncestors(path, t.fs.IsDir)

	for _, dir := range missing {
		parent := filepath.Dir(dir)
		if !t.fs.IsWritable(parent) {
			result.fail(dir, &NotWritableError{Path: parent})
			return
		}
		if err := t.fs.Mkdir(dir, mode); err != nil {
			result.fail(dir, err)
			return
		}
		result.Created = append(result.Created, dir)
	}
}

// MissingAncestors returns path and each of its ancestors that is not an
// existing directory, ordered from the outermost down to path. The scan stops
// at the first existing directory or at the filesystem root.
func MissingAncestors(path string, isDir func(string) bool) []string {
	var missing []string
	dir := filepath.Clean(path)
	for !isDir(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		missing = append(missing, dir)
		dir = parent
	}
	slices.Reverse(missing)
	return missing
}
