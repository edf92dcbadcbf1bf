package career

import "errors"

// Domain-specific errors for the career package.
var (
	ErrRoleNotFound = errors.New("no data for role")
	ErrEmptyQuery   = errors.New("query is empty")
	ErrQueryTooLong = errors.New("query exceeds maximum length")
)
