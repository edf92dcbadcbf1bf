package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTool is returned when a tool name is registered twice.
	// Registration errors are fatal at startup.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrUnknownTool is returned when invoking an unregistered tool name.
	ErrUnknownTool = errors.New("unknown tool")
)

// ArgumentError reports tool arguments that failed schema validation.
// The tool never executes when this is returned.
type ArgumentError struct {
	Tool string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("tool %s: invalid arguments: %v", e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
