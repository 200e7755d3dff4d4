package cat

// CatDTO is the wire format for the cat operation
type CatDTO struct {
	Files  []string `json:"files" mapstructure:"files"`
	Output string   `json:"output,omitempty" mapstructure:"output"`
	Append bool     `json:"append,omitempty" mapstructure:"append"`
}

// CatRequest is the validated domain entity for the cat operation
type CatRequest struct {
	files      []string
	output     string
	appendMode bool
}

// NewCatRequest creates a validated CatRequest from a DTO
func NewCatRequest(dto CatDTO) (*CatRequest, error) {
	for _, f := range dto.Files {
		if f == "" {
			return nil, ErrEmptyPath
		}
	}
	if dto.Append && dto.Output == "" {
		return nil, ErrAppendWithoutOutput
	}
	return &CatRequest{
		files:      append([]string(nil), dto.Files...),
		output:     dto.Output,
		appendMode: dto.Append,
	}, nil
}

// Files returns the inputs in concatenation order
func (r *CatRequest) Files() []string { return r.files }

// Output returns the redirect target, empty when the content is returned
func (r *CatRequest) Output() string { return r.output }

// Append returns whether the target is appended to (>>) instead of truncated (>)
func (r *CatRequest) Append() bool { return r.appendMode }

// CatResponse contains the result of a cat operation
type CatResponse struct {
	Content string   `json:"content,omitempty"`
	Output  string   `json:"output,omitempty"`
	Written int64    `json:"written"`
	Skipped []string `json:"skipped,omitempty"`
}
