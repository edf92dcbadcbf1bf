package router

import "careermate/internal/specialist"

// Decision is the outcome of routing one query. It is consumed once and
// discarded; nothing is cached across queries.
type Decision struct {
	// Handler is the selected specialist, or nil when no specialist
	// applies (the Unhandled path).
	Handler *specialist.Handler

	// Arguments are the tool arguments produced by the classifier. They
	// are validated against the tool's schema before any invocation.
	Arguments map[string]interface{}

	// Reply is the free-form answer used when Handler is nil.
	Reply string
}
