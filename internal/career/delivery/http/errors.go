package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careermate/internal/agent"
	"careermate/internal/backend"
	"careermate/internal/career"
	"careermate/internal/session"
	"careermate/pkg/response"
)

// mapError translates pipeline errors into HTTP responses. Client faults
// (bad query, bad tool arguments) are 4xx; backend unavailability is 502 so
// callers can distinguish it from our own failures.
func (h *handler) mapError(c *gin.Context, err error) {
	var argErr *agent.ArgumentError
	switch {
	case errors.Is(err, career.ErrEmptyQuery), errors.Is(err, career.ErrQueryTooLong):
		response.Error(c, err, nil)
	case errors.Is(err, session.ErrSessionBusy):
		response.ErrorWithStatus(c, http.StatusConflict, err)
	case errors.As(err, &argErr):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, backend.ErrClassificationTimeout), errors.Is(err, backend.ErrClassificationUnavailable):
		response.ErrorWithStatus(c, http.StatusBadGateway, err)
	default:
		response.InternalError(c, err)
	}
}
