package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"careermate/internal/agent"
	"careermate/internal/backend"
	"careermate/internal/career"
	"careermate/internal/model"
	"careermate/internal/router"
	"careermate/internal/schema"
	"careermate/internal/specialist"
	"careermate/pkg/log"
)

// Session runs queries through the routing pipeline one at a time. It holds
// no conversation history; each query is classified, dispatched, and shaped
// independently.
type Session struct {
	ID string

	// running serializes queries; mu guards state reads against writers.
	running sync.Mutex
	mu      sync.Mutex
	state   State

	router         router.Router
	registry       *agent.ToolRegistry
	backend        backend.Backend
	handlers       []specialist.Handler
	maxQueryLength int
	l              log.Logger
}

// New creates a new Session.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(id string, r router.Router, registry *agent.ToolRegistry, b backend.Backend, handlers []specialist.Handler, maxQueryLength int, l log.Logger) *Session {
	return &Session{
		ID:             id,
		state:          StateIdle,
		router:         r,
		registry:       registry,
		backend:        b,
		handlers:       handlers,
		maxQueryLength: maxQueryLength,
		l:              l,
	}
}

// State reports the stage of the most recent query.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one query through route -> invoke -> summarize -> validate and
// returns the structured result. A query no specialist claims resolves to
// the Unhandled variant with StateDone; pipeline breakage resolves to
// StateFailed with a *QueryError naming the stage.
func (s *Session) Submit(ctx context.Context, query string) (model.StructuredResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.StructuredResult{}, career.ErrEmptyQuery
	}
	if s.maxQueryLength > 0 && len(query) > s.maxQueryLength {
		return model.StructuredResult{}, career.ErrQueryTooLong
	}

	if !s.running.TryLock() {
		return model.StructuredResult{}, ErrSessionBusy
	}
	defer s.running.Unlock()
	s.setState(StateRouting)

	s.l.Infof(ctx, "%s: "+LogMsgRouting, LogPrefixSubmit, s.ID)
	decision, err := s.router.Route(ctx, query, s.handlers)
	if err != nil {
		return model.StructuredResult{}, s.fail(ctx, StateRouting, err)
	}

	if decision.Handler == nil {
		s.l.Infof(ctx, "%s: %s", LogPrefixSubmit, LogMsgUnhandled)
		result := model.NewUnhandled(decision.Reply)
		s.setState(StateDone)
		return result, nil
	}
	handler := *decision.Handler

	s.setState(StateInvoking)
	s.l.Infof(ctx, "%s: "+LogMsgInvoking, LogPrefixSubmit, handler.ToolName, handler.Name)
	toolResult, err := s.registry.Invoke(ctx, handler.ToolName, decision.Arguments)
	if err != nil {
		return model.StructuredResult{}, s.fail(ctx, StateInvoking, err)
	}

	s.setState(StateValidating)
	raw, err := s.backend.Summarize(ctx, toolResult, handler.OutputSchema)
	if err != nil {
		return model.StructuredResult{}, s.fail(ctx, StateValidating, err)
	}
	if err := schema.Validate(raw, handler.OutputSchema); err != nil {
		s.l.Warnf(ctx, "%s: "+LogMsgOutputInvalid, LogPrefixSubmit, err)
		return model.StructuredResult{}, s.fail(ctx, StateValidating, err)
	}

	result, err := decodeResult(handler.OutputKind, raw)
	if err != nil {
		return model.StructuredResult{}, s.fail(ctx, StateValidating, err)
	}

	s.setState(StateDone)
	s.l.Infof(ctx, "%s: "+LogMsgDone, LogPrefixSubmit, result.Kind)
	return result, nil
}

func (s *Session) fail(ctx context.Context, stage State, err error) error {
	s.setState(StateFailed)
	s.l.Warnf(ctx, "%s: "+LogMsgStageFailed, LogPrefixSubmit, stage, err)
	return &QueryError{Stage: stage, Err: err}
}

// decodeResult unmarshals validated output into the variant matching the
// handler's declared kind.
func decodeResult(kind model.ResultKind, raw json.RawMessage) (model.StructuredResult, error) {
	switch kind {
	case model.KindSkillGap:
		var gap model.SkillGap
		if err := json.Unmarshal(raw, &gap); err != nil {
			return model.StructuredResult{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		return model.StructuredResult{Kind: kind, SkillGap: &gap}, nil
	case model.KindJobListings:
		var listings []model.JobListing
		if err := json.Unmarshal(raw, &listings); err != nil {
			return model.StructuredResult{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		return model.StructuredResult{Kind: kind, JobListings: listings}, nil
	case model.KindCourseRecommendations:
		var recs []model.CourseRecommendation
		if err := json.Unmarshal(raw, &recs); err != nil {
			return model.StructuredResult{}, fmt.Errorf("decode %s: %w", kind, err)
		}
		return model.StructuredResult{Kind: kind, CourseRecommendations: recs}, nil
	default:
		return model.StructuredResult{}, fmt.Errorf("unknown result kind %q", kind)
	}
}
