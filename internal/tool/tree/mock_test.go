package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// mockFileSystem is an in-memory tree keyed by absolute slash paths.
type mockFileSystem struct {
	dirs     map[string][]string // directory -> child names (unsorted)
	files    map[string]bool
	symlinks map[string]bool // symlinks that point at directories
	openErr  map[string]error
	opened   []string
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		dirs:     make(map[string][]string),
		files:    make(map[string]bool),
		symlinks: make(map[string]bool),
		openErr:  make(map[string]error),
	}
}

func (m *mockFileSystem) addChild(path string) {
	parent := filepath.Dir(path)
	m.dirs[parent] = append(m.dirs[parent], filepath.Base(path))
}

func (m *mockFileSystem) mkdir(path string) {
	if _, ok := m.dirs[path]; !ok {
		m.dirs[path] = nil
	}
	if path != "/" {
		m.addChild(path)
	}
}

func (m *mockFileSystem) touch(path string) {
	m.files[path] = true
	m.addChild(path)
}

func (m *mockFileSystem) symlinkDir(path string) {
	m.symlinks[path] = true
	m.addChild(path)
}

func (m *mockFileSystem) ReadDirNames(path string) ([]string, error) {
	m.opened = append(m.opened, path)
	if err, ok := m.openErr[path]; ok {
		return nil, err
	}
	children, ok := m.dirs[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return slices.Clone(children), nil
}

func (m *mockFileSystem) Canonicalize(path string) (string, error) {
	if _, ok := m.dirs[path]; ok || m.files[path] || m.symlinks[path] {
		return path, nil
	}
	return "", fmt.Errorf("canonicalize %s: %w", path, os.ErrNotExist)
}

func (m *mockFileSystem) IsDir(path string) bool {
	_, ok := m.dirs[path]
	return ok || m.symlinks[path]
}

func (m *mockFileSystem) IsSymlink(path string) bool {
	return m.symlinks[path]
}

type warning struct {
	msg     interface{}
	keyvals []interface{}
}

type mockWarner struct {
	warnings []warning
}

func (m *mockWarner) Warn(msg interface{}, keyvals ...interface{}) {
	m.warnings = append(m.warnings, warning{msg: msg, keyvals: keyvals})
}
