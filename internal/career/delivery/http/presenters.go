package http

import (
	"careermate/internal/model"
	"careermate/internal/session"
)

// --- Request DTOs ---

type queryReq struct {
	// SessionID is optional; an empty or expired ID starts a fresh session.
	SessionID string `json:"session_id"`
	Query     string `json:"query" binding:"required,max=2000"`
}

func (r queryReq) validate() error { return nil }

// --- Response DTOs ---

type queryResp struct {
	SessionID string                 `json:"session_id"`
	State     string                 `json:"state"`
	Result    model.StructuredResult `json:"result"`
}

func (h *handler) newQueryResp(s *session.Session, result model.StructuredResult) queryResp {
	return queryResp{
		SessionID: s.ID,
		State:     string(s.State()),
		Result:    result,
	}
}

type sessionResp struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

func (h *handler) newSessionResp(s *session.Session) sessionResp {
	return sessionResp{
		SessionID: s.ID,
		State:     string(s.State()),
	}
}
