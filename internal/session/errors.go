package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionBusy is returned when a query arrives while the session is
	// still processing a previous one.
	ErrSessionBusy = errors.New("session is processing another query")

	// ErrSessionNotFound is returned by the manager for an unknown or
	// expired session ID.
	ErrSessionNotFound = errors.New("session not found")
)

// QueryError reports a query that failed at a specific pipeline stage. It
// is distinct from the Unhandled result: Unhandled means no specialist
// claimed the query, QueryError means the pipeline broke.
type QueryError struct {
	Stage State
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed at %s: %v", e.Stage, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
