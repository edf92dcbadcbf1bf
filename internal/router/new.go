package router

import (
	"context"

	"careermate/internal/agent"
	"careermate/internal/backend"
	"careermate/internal/specialist"
	"careermate/pkg/log"
)

// Router selects at most one specialist handler per query.
type Router interface {
	Route(ctx context.Context, query string, handlers []specialist.Handler) (Decision, error)
}

// IntentRouter classifies queries through the language-understanding
// backend and resolves the result against the registered handler set.
type IntentRouter struct {
	backend  backend.Backend
	registry *agent.ToolRegistry
	l        log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(b backend.Backend, registry *agent.ToolRegistry, l log.Logger) *IntentRouter {
	return &IntentRouter{
		backend:  b,
		registry: registry,
		l:        l,
	}
}
