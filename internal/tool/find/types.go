package find

import (
	"github.com/Cyclone1070/sysutil/internal/config"
	"github.com/Cyclone1070/sysutil/internal/tool/pattern"
)

// FindDTO is the wire format for the find operation
type FindDTO struct {
	Path        string   `json:"path" mapstructure:"path"`
	Type        string   `json:"type,omitempty" mapstructure:"type"`
	MaxDepth    int      `json:"max_depth,omitempty" mapstructure:"max_depth"`
	Names       []string `json:"names,omitempty" mapstructure:"names"`
	SkipIgnored bool     `json:"skip_ignored,omitempty" mapstructure:"skip_ignored"`
}

// FindRequest is the validated domain entity for the find operation
type FindRequest struct {
	path        string
	typeFilter  TypeFilter
	maxDepth    int
	patterns    pattern.Set
	skipIgnored bool
}

// NewFindRequest creates a validated FindRequest from a DTO
func NewFindRequest(dto FindDTO, cfg *config.Config) (*FindRequest, error) {
	typeFilter, err := ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	if dto.MaxDepth < 0 {
		return nil, &NegativeDepthError{Value: dto.MaxDepth}
	}
	maxDepth := dto.MaxDepth
	if maxDepth == 0 {
		maxDepth = cfg.Tools.DefaultFindMaxDepth
	}
	if maxDepth > cfg.Tools.MaxFindMaxDepth {
		return nil, &DepthExceededError{Value: maxDepth, Max: cfg.Tools.MaxFindMaxDepth}
	}

	for _, name := range dto.Names {
		if name == "" {
			return nil, ErrEmptyPattern
		}
	}

	// Path defaults to "." if empty
	path := dto.Path
	if path == "" {
		path = "."
	}

	return &FindRequest{
		path:        path,
		typeFilter:  typeFilter,
		maxDepth:    maxDepth,
		patterns:    pattern.TranslateAll(dto.Names),
		skipIgnored: dto.SkipIgnored,
	}, nil
}

// Path returns the search root
func (r *FindRequest) Path() string { return r.path }

// TypeFilter returns the entry type selection
func (r *FindRequest) TypeFilter() TypeFilter { return r.typeFilter }

// MaxDepth returns the depth bound (0 = unbounded)
func (r *FindRequest) MaxDepth() int { return r.maxDepth }

// Patterns returns the compiled -name globs
func (r *FindRequest) Patterns() pattern.Set { return r.patterns }

// SkipIgnored returns whether .gitignore'd entries are dropped
func (r *FindRequest) SkipIgnored() bool { return r.skipIgnored }

// FindResponse contains the result of a find operation
type FindResponse struct {
	Matches []string `json:"matches"`
	Count   int      `json:"count"`
}
