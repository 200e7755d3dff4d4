// Package testhelpers provides shared utilities for tests that work on a
// real temporary directory tree.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CanonicalTempDir returns t.TempDir() with symlinks resolved, so it compares
// equal to paths produced by canonicalising tools (macOS /var -> /private/var).
func CanonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// WriteFile creates path with content, making parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// BuildTree creates files below root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func BuildTree(t *testing.T, root string, entries map[string]string) {
	t.Helper()
	for rel, content := range entries {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		WriteFile(t, path, content)
	}
}
