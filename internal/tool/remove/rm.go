package remove

import "context"

// RmTool handles the rm operation.
type RmTool struct {
	remover *Remover
	merger  listingMerger
}

// NewRmTool creates a new RmTool with injected dependencies.
func NewRmTool(fs fileSystem, merger listingMerger) *RmTool {
	return &RmTool{
		remover: NewRemover(fs),
		merger:  merger,
	}
}

// Run deletes the requested paths. Recursive requests expand every directory
// argument first and delete files before directories. Partial failure is
// reported through RmResponse.Success; the error return is reserved for
// requests that could not start.
func (t *RmTool) Run(ctx context.Context, req *RmRequest) (*RmResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *Result
	if req.Recursive() {
		result = t.remover.RemoveListing(t.merger.Merge(req.Paths()))
	} else {
		result = t.remover.RemovePaths(req.Paths())
	}

	resp := &RmResponse{
		Success: result.OK(),
		Removed: result.Removed,
	}
	for _, f := range result.Failures {
		resp.Failed = append(resp.Failed, f.Path)
		resp.Failures = append(resp.Failures, f.Error())
	}
	return resp, nil
}
