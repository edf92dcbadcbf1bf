package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careermate/config"
	"careermate/internal/agent"
	"careermate/internal/agent/tools"
	"careermate/internal/backend"
	careerHTTP "careermate/internal/career/delivery/http"
	"careermate/internal/career/provider/memory"
	"careermate/internal/middleware"
	"careermate/internal/router"
	"careermate/internal/session"
	"careermate/internal/specialist"
	"careermate/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockBackend struct {
	classification backend.Classification
	classifyErr    error
}

func (m *mockBackend) Classify(ctx context.Context, query string, candidates []backend.Candidate) (backend.Classification, error) {
	return m.classification, m.classifyErr
}

func (m *mockBackend) Summarize(ctx context.Context, toolResult interface{}, targetSchema map[string]interface{}) (json.RawMessage, error) {
	return json.Marshal(toolResult)
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestEngine(t *testing.T, b backend.Backend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	provider := memory.New(memory.DefaultData())
	registry := agent.NewToolRegistry()
	for _, tool := range []agent.Tool{
		tools.NewSkillGapTool(provider),
		tools.NewFindJobsTool(provider),
		tools.NewRecommendCoursesTool(provider),
	} {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}
	handlers, err := specialist.BuildHandlers(registry)
	if err != nil {
		t.Fatalf("BuildHandlers() error = %v", err)
	}

	r := router.New(b, registry, l)
	sessions := session.NewManager(session.ManagerConfig{
		TTL:            time.Minute,
		CacheSize:      16,
		MaxQueryLength: 2000,
	}, r, registry, b, handlers, l)

	h := careerHTTP.New(l, sessions)
	mw := middleware.New(l, config.RateLimitConfig{Enabled: false})

	engine := gin.New()
	careerHTTP.RegisterRoutes(engine.Group("/api/v1/career"), h, mw)
	return engine
}

func postQuery(t *testing.T, engine *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/career/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		ErrorCode int                    `json:"error_code"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestQuery(t *testing.T) {
	t.Run("Skill Gap Query Returns Structured Result", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classification: backend.Classification{
			Handler: specialist.NameSkillGap,
			Arguments: map[string]interface{}{
				"user_skills": []interface{}{"Python", "SQL"},
				"target_job":  "data scientist",
			},
		}})

		w := postQuery(t, engine, map[string]interface{}{"query": "what am I missing to become a data scientist?"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}

		data := decodeData(t, w)
		if data["session_id"] == "" {
			t.Error("response missing session_id")
		}
		if data["state"] != "done" {
			t.Errorf("state = %v, want done", data["state"])
		}
		result, _ := data["result"].(map[string]interface{})
		if result["kind"] != "skill_gap" {
			t.Errorf("result kind = %v, want skill_gap", result["kind"])
		}
	})

	t.Run("Greeting Returns Unhandled", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classification: backend.Classification{
			Reply: "Hello! Ask me about skills, jobs, or courses.",
		}})

		w := postQuery(t, engine, map[string]interface{}{"query": "hello"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		result, _ := decodeData(t, w)["result"].(map[string]interface{})
		if result["kind"] != "unhandled" {
			t.Errorf("result kind = %v, want unhandled", result["kind"])
		}
	})

	t.Run("Session Reuse", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classification: backend.Classification{Reply: "hi"}})

		first := decodeData(t, postQuery(t, engine, map[string]interface{}{"query": "hello"}))
		id, _ := first["session_id"].(string)
		if id == "" {
			t.Fatal("first response missing session_id")
		}

		second := decodeData(t, postQuery(t, engine, map[string]interface{}{"query": "hello again", "session_id": id}))
		if second["session_id"] != id {
			t.Errorf("session_id = %v, want reused %q", second["session_id"], id)
		}
	})

	t.Run("Missing Query Is Bad Request", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{})
		w := postQuery(t, engine, map[string]interface{}{"session_id": "x"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("Bad Tool Arguments Are Unprocessable", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classification: backend.Classification{
			Handler:   specialist.NameSkillGap,
			Arguments: map[string]interface{}{"user_skills": []interface{}{"Python"}},
		}})

		w := postQuery(t, engine, map[string]interface{}{"query": "what am I missing?"})
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want %d: %s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
		}
	})

	t.Run("Classifier Outage Is Bad Gateway", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classifyErr: backend.ErrClassificationUnavailable})

		w := postQuery(t, engine, map[string]interface{}{"query": "find me jobs"})
		if w.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}

func TestSession(t *testing.T) {
	t.Run("Known Session", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{classification: backend.Classification{Reply: "hi"}})

		created := decodeData(t, postQuery(t, engine, map[string]interface{}{"query": "hello"}))
		id, _ := created["session_id"].(string)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/career/sessions/"+id, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		data := decodeData(t, w)
		if data["state"] != "done" {
			t.Errorf("state = %v, want done", data["state"])
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		engine := newTestEngine(t, &mockBackend{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/career/sessions/nope", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}
