package which

// WhichDTO is the wire format for the which operation
type WhichDTO struct {
	Program  string `json:"program" mapstructure:"program"`
	Fallback string `json:"fallback,omitempty" mapstructure:"fallback"`
}

// WhichRequest is the validated domain entity for the which operation.
// An empty program is valid and resolves to the fallback.
type WhichRequest struct {
	program  string
	fallback string
}

// NewWhichRequest creates a WhichRequest from a DTO
func NewWhichRequest(dto WhichDTO) (*WhichRequest, error) {
	return &WhichRequest{program: dto.Program, fallback: dto.Fallback}, nil
}

// Program returns the command name or path to resolve
func (r *WhichRequest) Program() string { return r.program }

// Fallback returns the value reported when nothing is found
func (r *WhichRequest) Fallback() string { return r.fallback }

// WhichResponse contains the result of a which operation
type WhichResponse struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}
