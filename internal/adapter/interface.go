// Package adapter exposes every tool behind one name-addressed interface that
// takes loosely typed arguments and returns JSON.
package adapter

import "context"

// Tool is a name-addressable operation. Implementations are stateless and
// safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Declaration returns the parameter schema
	Declaration() Declaration

	// Execute runs the tool with the given arguments and returns the response
	// as JSON
	Execute(ctx context.Context, args map[string]any) (string, error)
}
