package backend

import (
	"context"
	"errors"
	"fmt"

	"careermate/pkg/llmprovider"
)

var (
	// ErrClassificationTimeout indicates the backend exceeded its deadline.
	ErrClassificationTimeout = errors.New("classification timed out")

	// ErrClassificationUnavailable indicates the backend is unreachable or
	// every configured provider failed.
	ErrClassificationUnavailable = errors.New("classification backend unavailable")
)

// mapGenerateError folds provider-chain failures into the backend taxonomy.
func mapGenerateError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, llmprovider.ErrProviderTimeout):
		return fmt.Errorf("%w: %v", ErrClassificationTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrClassificationUnavailable, err)
	}
}
