package http

import (
	"careermate/internal/session"
	"careermate/pkg/log"
)

// Handler is the public interface for the career HTTP delivery layer.
type Handler interface {
	Query(c interface{})
	Session(c interface{})
}

type handler struct {
	l        log.Logger
	sessions *session.Manager
}

// New creates a new HTTP handler for the career domain.
func New(l log.Logger, sessions *session.Manager) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
	}
}
