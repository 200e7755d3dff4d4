package adapter

import (
	"github.com/Cyclone1070/sysutil/internal/config"
	"github.com/Cyclone1070/sysutil/internal/tool/cat"
	"github.com/Cyclone1070/sysutil/internal/tool/find"
	"github.com/Cyclone1070/sysutil/internal/tool/mkdir"
	"github.com/Cyclone1070/sysutil/internal/tool/remove"
	"github.com/Cyclone1070/sysutil/internal/tool/service/fs"
	"github.com/Cyclone1070/sysutil/internal/tool/tree"
	"github.com/Cyclone1070/sysutil/internal/tool/which"
)

type warner interface {
	Warn(msg interface{}, keyvals ...interface{})
}

// NewTools instantiates every tool over the OS filesystem. Warnings from
// traversal and cat go to warn.
func NewTools(cfg *config.Config, warn warner) []Tool {
	osFS := fs.NewOSFileSystem()
	walker := tree.NewWalker(osFS, warn, tree.WithLocale(cfg.Locale()))
	merger := tree.NewMerger(osFS, walker)

	return []Tool{
		NewRmAdapter(remove.NewRmTool(osFS, merger)),
		NewMkdirAdapter(mkdir.NewMkdirTool(osFS), cfg),
		NewCatAdapter(cat.NewCatTool(osFS, warn, cfg)),
		NewWhichAdapter(which.NewWhichTool(osFS, cfg)),
		NewFindAdapter(find.NewFindTool(osFS, walker, osFS), cfg),
	}
}

// NewRmAdapter creates an rm adapter
func NewRmAdapter(t *remove.RmTool) Tool {
	return NewBaseAdapter(
		"rm",
		"Removes files, and directory trees when recursive is set",
		&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"paths": {
					Type:        TypeArray,
					Description: "Paths to remove",
					Items:       &Schema{Type: TypeString},
				},
				"recursive": {
					Type:        TypeBoolean,
					Description: "Remove directories and their contents",
				},
				"force": {
					Type:        TypeBoolean,
					Description: "Accepted for compatibility; has no effect",
				},
			},
			Required: []string{"paths"},
		},
		remove.NewRmRequest,
		t.Run,
	)
}

// NewMkdirAdapter creates a mkdir adapter
func NewMkdirAdapter(t *mkdir.MkdirTool, cfg *config.Config) Tool {
	return NewBaseAdapter(
		"mkdir",
		"Creates directories",
		&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"paths": {
					Type:        TypeArray,
					Description: "Directories to create",
					Items:       &Schema{Type: TypeString},
				},
				"parents": {
					Type:        TypeBoolean,
					Description: "Create missing parent directories",
				},
				"mode": {
					Type:        TypeString,
					Description: "Octal permission bits, e.g. 0755",
				},
			},
			Required: []string{"paths"},
		},
		func(dto mkdir.MkdirDTO) (*mkdir.MkdirRequest, error) {
			return mkdir.NewMkdirRequest(dto, cfg)
		},
		t.Run,
	)
}

// NewCatAdapter creates a cat adapter
func NewCatAdapter(t *cat.CatTool) Tool {
	return NewBaseAdapter(
		"cat",
		"Concatenates files, returning the content or writing it to an output file",
		&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"files": {
					Type:        TypeArray,
					Description: "Files to concatenate in order",
					Items:       &Schema{Type: TypeString},
				},
				"output": {
					Type:        TypeString,
					Description: "File to write the result to",
				},
				"append": {
					Type:        TypeBoolean,
					Description: "Append to output instead of truncating it",
				},
			},
			Required: []string{"files"},
		},
		cat.NewCatRequest,
		t.Run,
	)
}

// NewWhichAdapter creates a which adapter
func NewWhichAdapter(t *which.WhichTool) Tool {
	return NewBaseAdapter(
		"which",
		"Shows the full path of a program on the search path",
		&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"program": {
					Type:        TypeString,
					Description: "Program name or path",
				},
				"fallback": {
					Type:        TypeString,
					Description: "Value returned when the program is not found",
				},
			},
			Required: []string{"program"},
		},
		which.NewWhichRequest,
		t.Run,
	)
}

// NewFindAdapter creates a find adapter
func NewFindAdapter(t *find.FindTool, cfg *config.Config) Tool {
	return NewBaseAdapter(
		"find",
		"Lists entries under a directory filtered by type and name globs",
		&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"path": {
					Type:        TypeString,
					Description: "Directory to search (default .)",
				},
				"type": {
					Type:        TypeString,
					Description: "f for files, d for directories",
					Enum:        []string{"f", "d"},
				},
				"max_depth": {
					Type:        TypeInteger,
					Description: "Maximum directory depth, 0 for unbounded",
				},
				"names": {
					Type:        TypeArray,
					Description: "Basename globs (* and ?), any of which may match",
					Items:       &Schema{Type: TypeString},
				},
				"skip_ignored": {
					Type:        TypeBoolean,
					Description: "Drop entries matched by the root's .gitignore",
				},
			},
		},
		func(dto find.FindDTO) (*find.FindRequest, error) {
			return find.NewFindRequest(dto, cfg)
		},
		t.Run,
	)
}
