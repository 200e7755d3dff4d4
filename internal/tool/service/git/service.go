package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// FileSystem defines the minimal filesystem interface needed to load .gitignore.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Service answers whether a path below a search root is ignored by the
// root's .gitignore.
type Service struct {
	root    string
	matcher gitignore.Matcher
}

// NewService loads root/.gitignore. A missing file yields a Service that never
// ignores anything.
func NewService(root string, fs FileSystem) (*Service, error) {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := fs.Stat(gitignorePath); err != nil {
		return &Service{root: root}, nil
	}

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range splitLines(string(content)) {
		line = strings.TrimRight(line, " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &Service{root: root, matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore reports whether the absolute path is ignored. Paths outside the
// root and the root itself are never ignored.
func (s *Service) ShouldIgnore(path string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return s.matcher.Match(splitPath(rel), isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// splitLines splits content into lines, handling both \n and \r\n line endings.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

