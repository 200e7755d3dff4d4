package adapter

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

// Registry maps tool names to tools.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a registry holding tools. A later tool replaces an
// earlier one with the same name.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a tool.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.tools)
	slices.Sort(names)
	return names
}

// Declarations returns the declaration of every tool, sorted by name.
func (r *Registry) Declarations() []Declaration {
	return lo.Map(r.Names(), func(name string, _ int) Declaration {
		return r.tools[name].Declaration()
	})
}

// Execute runs the named tool.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	return t.Execute(ctx, args)
}
