package mkdir

import (
	"os"
	"strconv"

	"github.com/Cyclone1070/sysutil/internal/config"
)

// MkdirDTO is the wire format for the mkdir operation
type MkdirDTO struct {
	Paths   []string `json:"paths" mapstructure:"paths"`
	Parents bool     `json:"parents,omitempty" mapstructure:"parents"`
	Mode    string   `json:"mode,omitempty" mapstructure:"mode"`
}

// MkdirRequest is the validated domain entity for the mkdir operation
type MkdirRequest struct {
	paths   []string
	parents bool
	mode    os.FileMode
}

// NewMkdirRequest creates a validated MkdirRequest from a DTO. An empty mode
// falls back to the configured default.
func NewMkdirRequest(dto MkdirDTO, cfg *config.Config) (*MkdirRequest, error) {
	if len(dto.Paths) == 0 {
		return nil, ErrPathRequired
	}
	for _, p := range dto.Paths {
		if p == "" {
			return nil, ErrEmptyPath
		}
	}

	mode := os.FileMode(cfg.DirMode())
	if dto.Mode != "" {
		parsed, err := strconv.ParseUint(dto.Mode, 8, 32)
		if err != nil || parsed > 0o7777 {
			return nil, &InvalidModeError{Value: dto.Mode}
		}
		mode = os.FileMode(parsed)
	}

	return &MkdirRequest{
		paths:   append([]string(nil), dto.Paths...),
		parents: dto.Parents,
		mode:    mode,
	}, nil
}

// Paths returns the directories to create
func (r *MkdirRequest) Paths() []string { return r.paths }

// Parents returns whether missing ancestors are created too
func (r *MkdirRequest) Parents() bool { return r.parents }

// Mode returns the permission bits for new directories
func (r *MkdirRequest) Mode() os.FileMode { return r.mode }

// MkdirResponse contains the result of a mkdir operation
type MkdirResponse struct {
	Success  bool     `json:"success"`
	Created  []string `json:"created"`
	Failed   []string `json:"failed,omitempty"`
	Failures []string `json:"failures,omitempty"`
}
