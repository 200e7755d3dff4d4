// Package system offers shell-style file utilities (rm, mkdir, cat, which and
// find) as plain function calls. Arguments follow the command-line forms of
// the corresponding commands, and a single string argument is split on
// whitespace:
//
//	system.Rm("-rf", dir)
//	system.MkDir("-p -m 0755 build/out")
//	system.Cat("a.txt", "b.txt", ">>", "all.txt")
//	system.Find(dir, "-type", "f", "-name", "*.go")
//
// Every call works directly on the OS filesystem. Warnings (unreadable
// directories, unopenable cat inputs) are logged to stderr.
package system

import (
	"context"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/Cyclone1070/sysutil/internal/config"
	"github.com/Cyclone1070/sysutil/internal/logging"
	"github.com/Cyclone1070/sysutil/internal/tool/cat"
	"github.com/Cyclone1070/sysutil/internal/tool/find"
	"github.com/Cyclone1070/sysutil/internal/tool/mkdir"
	"github.com/Cyclone1070/sysutil/internal/tool/pattern"
	"github.com/Cyclone1070/sysutil/internal/tool/remove"
	"github.com/Cyclone1070/sysutil/internal/tool/service/fs"
	"github.com/Cyclone1070/sysutil/internal/tool/tree"
	"github.com/Cyclone1070/sysutil/internal/tool/which"
)

type env struct {
	cfg    *config.Config
	fs     *fs.OSFileSystem
	walker *tree.Walker
	warn   *log.Logger
}

func newEnv() *env {
	cfg := config.DefaultConfig()
	osFS := fs.NewOSFileSystem()
	warn := logging.New(os.Stderr, cfg.Log.Level)
	return &env{
		cfg:    cfg,
		fs:     osFS,
		walker: tree.NewWalker(osFS, warn, tree.WithLocale(cfg.Locale())),
		warn:   warn,
	}
}

// Rm removes files. With -r, directory arguments are removed with their
// whole contents. -f is accepted and ignored. It reports whether every
// deletion succeeded.
func Rm(args ...string) bool {
	dto, err := parseRmArgs(tokens(args))
	if err != nil {
		return false
	}

	req, err := remove.NewRmRequest(dto)
	if err != nil {
		return false
	}

	e := newEnv()
	tool := remove.NewRmTool(e.fs, tree.NewMerger(e.fs, e.walker))
	resp, err := tool.Run(context.Background(), req)
	return err == nil && resp.Success
}

// MkDir creates directories. -p creates missing parents and -m sets the
// octal permission bits (default 0777). It reports whether every directory
// was created.
func MkDir(args ...string) bool {
	dto, err := parseMkdirArgs(tokens(args))
	if err != nil {
		return false
	}

	e := newEnv()
	req, err := mkdir.NewMkdirRequest(dto, e.cfg)
	if err != nil {
		return false
	}
	resp, err := mkdir.NewMkdirTool(e.fs).Run(context.Background(), req)
	return err == nil && resp.Success
}

// Cat concatenates files and returns their content. When the arguments end
// with "> file" or ">> file" the content is written to file instead
// (truncating or appending) and the returned string is empty.
func Cat(args ...string) (string, error) {
	args = tokens(args)

	var dto cat.CatDTO
	for i := 0; i < len(args); i++ {
		if args[i] == ">" || args[i] == ">>" {
			dto.Append = args[i] == ">>"
			if i+1 < len(args) {
				dto.Output = args[i+1]
			}
			break
		}
		dto.Files = append(dto.Files, args[i])
	}
	if dto.Append && dto.Output == "" {
		dto.Append = false
	}

	req, err := cat.NewCatRequest(dto)
	if err != nil {
		return "", err
	}

	e := newEnv()
	resp, err := cat.NewCatTool(e.fs, e.warn, e.cfg).Run(context.Background(), req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Which returns the full path of program, or fallback when it cannot be
// found on the search path.
func Which(program, fallback string) string {
	e := newEnv()
	req, err := which.NewWhichRequest(which.WhichDTO{Program: program, Fallback: fallback})
	if err != nil {
		return fallback
	}
	resp, err := which.NewWhichTool(e.fs, e.cfg).Run(context.Background(), req)
	if err != nil {
		return fallback
	}
	return resp.Path
}

// Find lists the entries under the directory given as first argument.
// The options are find(1)'s single-dash long forms, so they are scanned by
// hand rather than through a getopt-style flag set.
// Supported options are -type d|f, -maxdepth n and -name pattern (repeatable,
// any may match). Patterns understand * and ? and are matched against the
// basename. With no -type, directories are listed before files. A directory
// that cannot be resolved yields an empty result. Unrecognised options and
// -type values are ignored.
func Find(args ...string) []string {
	args = tokens(args)
	if len(args) == 0 {
		return []string{}
	}

	root := args[0]
	typeFilter := find.TypeBoth
	maxDepth := 0
	var names []string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-type":
			if i+1 < len(args) {
				i++
				if tf, err := find.ParseType(args[i]); err == nil {
					typeFilter = tf
				}
			}
		case "-name":
			if i+1 < len(args) {
				i++
				names = append(names, args[i])
			}
		case "-maxdepth":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil && n > 0 {
					maxDepth = n
				}
			}
		}
	}

	e := newEnv()
	return find.NewFinder(e.fs, e.walker).Find(root, maxDepth, typeFilter, pattern.TranslateAll(names))
}
