package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// RequestBuilder validates a decoded DTO into a request.
type RequestBuilder[DTO, Req any] func(DTO) (Req, error)

// Runner executes a validated request.
type Runner[Req, Resp any] func(context.Context, Req) (Resp, error)

// BaseAdapter provides common adapter functionality using generics.
// It centralizes argument decoding, validation, execution and response
// marshalling so each tool only supplies its schema and two functions.
//
// Type Parameters:
//   - DTO: the wire format the arguments decode into (e.g. remove.RmDTO)
//   - Req: the validated request (e.g. *remove.RmRequest)
//   - Resp: the response type (e.g. *remove.RmResponse)
type BaseAdapter[DTO, Req, Resp any] struct {
	declaration Declaration
	build       RequestBuilder[DTO, Req]
	run         Runner[Req, Resp]
}

// NewBaseAdapter creates a new base adapter.
//
// Example usage:
//
//	a := NewBaseAdapter(
//	    "rm",
//	    "Removes files and directories",
//	    &Schema{...},
//	    remove.NewRmRequest,
//	    rmTool.Run,
//	)
func NewBaseAdapter[DTO, Req, Resp any](
	name string,
	description string,
	params *Schema,
	build RequestBuilder[DTO, Req],
	run Runner[Req, Resp],
) *BaseAdapter[DTO, Req, Resp] {
	return &BaseAdapter[DTO, Req, Resp]{
		declaration: Declaration{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
		build: build,
		run:   run,
	}
}

// Name implements adapter.Tool
func (b *BaseAdapter[DTO, Req, Resp]) Name() string {
	return b.declaration.Name
}

// Description implements adapter.Tool
func (b *BaseAdapter[DTO, Req, Resp]) Description() string {
	return b.declaration.Description
}

// Declaration implements adapter.Tool
func (b *BaseAdapter[DTO, Req, Resp]) Declaration() Declaration {
	return b.declaration
}

// Execute implements adapter.Tool
//
// This method:
// 1. Decodes the args map into the DTO (weakly typed, unknown keys rejected)
// 2. Builds the validated request
// 3. Runs the tool
// 4. Marshals the response to JSON
func (b *BaseAdapter[DTO, Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var dto DTO

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &dto,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", &ArgumentError{Tool: b.Name(), Cause: err}
	}

	req, err := b.build(dto)
	if err != nil {
		return "", fmt.Errorf("%s validation failed: %w", b.Name(), err)
	}

	resp, err := b.run(ctx, req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}
