package remove

// RmDTO is the wire format for the rm operation
type RmDTO struct {
	Paths     []string `json:"paths" mapstructure:"paths"`
	Recursive bool     `json:"recursive,omitempty" mapstructure:"recursive"`
	Force     bool     `json:"force,omitempty" mapstructure:"force"`
}

// RmRequest is the validated domain entity for the rm operation
type RmRequest struct {
	paths     []string
	recursive bool
	force     bool
}

// NewRmRequest creates a validated RmRequest from a DTO
func NewRmRequest(dto RmDTO) (*RmRequest, error) {
	if len(dto.Paths) == 0 {
		return nil, ErrPathRequired
	}
	for _, p := range dto.Paths {
		if p == "" {
			return nil, ErrEmptyPath
		}
	}
	return &RmRequest{
		paths:     append([]string(nil), dto.Paths...),
		recursive: dto.Recursive,
		force:     dto.Force,
	}, nil
}

// Paths returns the paths to delete
func (r *RmRequest) Paths() []string { return r.paths }

// Recursive returns whether directory trees are removed
func (r *RmRequest) Recursive() bool { return r.recursive }

// Force is accepted for command-line compatibility and has no effect.
func (r *RmRequest) Force() bool { return r.force }

// RmResponse contains the result of an rm operation
type RmResponse struct {
	Success  bool     `json:"success"`
	Removed  []string `json:"removed"`
	Failed   []string `json:"failed,omitempty"`
	Failures []string `json:"failures,omitempty"` // Error text per failed path
}
