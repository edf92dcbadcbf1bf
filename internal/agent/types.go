package agent

import (
	"context"
	"fmt"

	"careermate/internal/schema"
)

// Tool represents a deterministic operation that can be selected by the
// language-understanding backend.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns the JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with schema-validated parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools. Registration happens once at
// startup; afterwards the registry is read-only and safe for concurrent
// use without locks.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Returns ErrDuplicateTool if a tool
// with the same name already exists.
func (r *ToolRegistry) Register(tool Tool) error {
	if _, exists := r.tools[tool.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name())
	}
	r.tools[tool.Name()] = tool
	return nil
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Invoke validates params against the named tool's parameter schema and
// runs it. ErrUnknownTool for unregistered names; *ArgumentError when the
// params do not conform — the tool code never runs in that case.
func (r *ToolRegistry) Invoke(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if params == nil {
		params = map[string]interface{}{}
	}
	if err := schema.ValidateMap(params, tool.Parameters()); err != nil {
		return nil, &ArgumentError{Tool: name, Err: err}
	}

	return tool.Execute(ctx, params)
}
