// Package which resolves a program name to the first matching executable on
// the search path.
package which

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Cyclone1070/sysutil/internal/config"
)

// WhichTool handles the which operation.
type WhichTool struct {
	fs     fileSystem
	config *config.Config
	goos   string
}

// NewWhichTool creates a new WhichTool for the running OS.
func NewWhichTool(fs fileSystem, cfg *config.Config) *WhichTool {
	return &WhichTool{fs: fs, config: cfg, goos: runtime.GOOS}
}

// Run looks the program up. A program that contains a directory is searched
// for in that directory only; otherwise every PATH entry is tried. When
// nothing matches the response carries the fallback with Found unset.
func (t *WhichTool) Run(ctx context.Context, req *WhichRequest) (*WhichResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path, ok := t.lookup(req.Program()); ok {
		return &WhichResponse{Path: path, Found: true}, nil
	}
	return &WhichResponse{Path: req.Fallback()}, nil
}

func (t *WhichTool) lookup(program string) (string, bool) {
	if program == "" {
		return "", false
	}

	var dirs []string
	if base := filepath.Base(program); base != program {
		dirs = []string{filepath.Dir(program)}
		program = base
	} else {
		dirs = t.searchPath()
	}

	// Every directory is tried with one suffix before moving to the next.
	for _, suffix := range t.suffixes(program) {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, program+suffix)
			if t.isExecutable(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func (t *WhichTool) searchPath() []string {
	path := t.fs.Getenv("PATH")
	if path == "" {
		path = t.fs.Getenv("Path")
	}
	if path == "" {
		return nil
	}
	return strings.Split(path, t.listSeparator())
}

func (t *WhichTool) suffixes(program string) []string {
	if t.goos != "windows" {
		return []string{""}
	}

	var suffixes []string
	if ext := t.fs.Getenv("PATHEXT"); ext != "" {
		suffixes = strings.Split(ext, ";")
	} else {
		suffixes = append(suffixes, t.config.Tools.WindowsExeSuffixes...)
	}
	// "cmd.exe" is accepted as given.
	if strings.Contains(program, ".") {
		suffixes = append([]string{""}, suffixes...)
	}
	return suffixes
}

func (t *WhichTool) isExecutable(path string) bool {
	info, err := t.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if t.goos == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func (t *WhichTool) listSeparator() string {
	if t.goos == "windows" {
		return ";"
	}
	return ":"
}
