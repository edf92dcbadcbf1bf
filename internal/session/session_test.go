package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"careermate/internal/agent"
	"careermate/internal/agent/tools"
	"careermate/internal/backend"
	"careermate/internal/career"
	"careermate/internal/career/provider/memory"
	"careermate/internal/model"
	"careermate/internal/router"
	"careermate/internal/schema"
	"careermate/internal/specialist"
	"careermate/pkg/log"
)

// scriptedBackend returns a fixed classification and shapes tool results by
// marshaling them verbatim, the degenerate faithful summarizer.
type scriptedBackend struct {
	classification backend.Classification
	classifyErr    error
	summarizeErr   error
	summarizeRaw   json.RawMessage // overrides marshaling when set
}

func (b *scriptedBackend) Classify(ctx context.Context, query string, candidates []backend.Candidate) (backend.Classification, error) {
	return b.classification, b.classifyErr
}

func (b *scriptedBackend) Summarize(ctx context.Context, toolResult interface{}, targetSchema map[string]interface{}) (json.RawMessage, error) {
	if b.summarizeErr != nil {
		return nil, b.summarizeErr
	}
	if b.summarizeRaw != nil {
		return b.summarizeRaw, nil
	}
	return json.Marshal(toolResult)
}

func newTestSession(t *testing.T, b backend.Backend) *Session {
	t.Helper()
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
	r := router.New(b, registry, log.NewNop())
	return New("test-session", r, registry, b, handlers, 2000, log.NewNop())
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Skill Gap End To End", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{
			Handler: specialist.NameSkillGap,
			Arguments: map[string]interface{}{
				"user_skills": []interface{}{"Python", "SQL"},
				"target_job":  "data scientist",
			},
		}}
		s := newTestSession(t, b)

		result, err := s.Submit(ctx, "I know Python and SQL, what do I need to become a data scientist?")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if s.State() != StateDone {
			t.Errorf("State() = %s, want %s", s.State(), StateDone)
		}
		if result.Kind != model.KindSkillGap || result.SkillGap == nil {
			t.Fatalf("Submit() result = %+v, want skill gap variant", result)
		}
		if result.SkillGap.TargetJob != "data scientist" {
			t.Errorf("TargetJob = %q, want %q", result.SkillGap.TargetJob, "data scientist")
		}
		want := []string{"Statistics", "Machine Learning", "Pandas"}
		if len(result.SkillGap.MissingSkills) != len(want) {
			t.Fatalf("MissingSkills = %v, want %v", result.SkillGap.MissingSkills, want)
		}
		for i, skill := range want {
			if result.SkillGap.MissingSkills[i] != skill {
				t.Errorf("MissingSkills[%d] = %q, want %q", i, result.SkillGap.MissingSkills[i], skill)
			}
		}
	})

	t.Run("Job Listings End To End", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{
			Handler: specialist.NameJobFinder,
			Arguments: map[string]interface{}{
				"user_skills": []interface{}{"Python", "SQL"},
			},
		}}
		s := newTestSession(t, b)

		result, err := s.Submit(ctx, "find me data science jobs")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if result.Kind != model.KindJobListings {
			t.Fatalf("Submit() kind = %s, want %s", result.Kind, model.KindJobListings)
		}
		if len(result.JobListings) == 0 {
			t.Fatal("Submit() returned no job listings, want at least one")
		}
		if result.JobListings[0].Company != "TechCorp" {
			t.Errorf("JobListings[0].Company = %q, want TechCorp", result.JobListings[0].Company)
		}
	})

	t.Run("Course Recommendations End To End", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{
			Handler: specialist.NameCourseRecommender,
			Arguments: map[string]interface{}{
				"missing_skills": []interface{}{"Statistics", "Pandas"},
			},
		}}
		s := newTestSession(t, b)

		result, err := s.Submit(ctx, "what should I study?")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if result.Kind != model.KindCourseRecommendations {
			t.Fatalf("Submit() kind = %s, want %s", result.Kind, model.KindCourseRecommendations)
		}
		if len(result.CourseRecommendations) != 2 {
			t.Fatalf("CourseRecommendations = %v, want 2 entries", result.CourseRecommendations)
		}
		if result.CourseRecommendations[0].Skill != "Statistics" {
			t.Errorf("first recommendation = %q, want Statistics", result.CourseRecommendations[0].Skill)
		}
	})

	t.Run("Unclaimed Query Is Done Not Failed", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{Reply: "Hello! Ask me about careers."}}
		s := newTestSession(t, b)

		result, err := s.Submit(ctx, "hello there")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if s.State() != StateDone {
			t.Errorf("State() = %s, want %s", s.State(), StateDone)
		}
		if result.Kind != model.KindUnhandled {
			t.Errorf("Submit() kind = %s, want %s", result.Kind, model.KindUnhandled)
		}
		if result.Unhandled != "Hello! Ask me about careers." {
			t.Errorf("Unhandled = %q, want the free-text reply", result.Unhandled)
		}
	})

	t.Run("Invented Handler Name Is Done Not Failed", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{Handler: "resume-specialist"}}
		s := newTestSession(t, b)

		result, err := s.Submit(ctx, "polish my resume")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if result.Kind != model.KindUnhandled {
			t.Errorf("Submit() kind = %s, want %s", result.Kind, model.KindUnhandled)
		}
		if s.State() != StateDone {
			t.Errorf("State() = %s, want %s", s.State(), StateDone)
		}
	})

	t.Run("Missing Required Argument Fails Before Execution", func(t *testing.T) {
		b := &scriptedBackend{classification: backend.Classification{
			Handler:   specialist.NameSkillGap,
			Arguments: map[string]interface{}{"user_skills": []interface{}{"python"}},
		}}
		s := newTestSession(t, b)

		_, err := s.Submit(ctx, "what am I missing?")
		if err == nil {
			t.Fatal("Submit() error = nil, want argument failure")
		}
		var qe *QueryError
		if !errors.As(err, &qe) || qe.Stage != StateInvoking {
			t.Fatalf("Submit() error = %v, want *QueryError at %s", err, StateInvoking)
		}
		var ae *agent.ArgumentError
		if !errors.As(err, &ae) {
			t.Errorf("Submit() error = %v, want wrapped *agent.ArgumentError", err)
		}
		if s.State() != StateFailed {
			t.Errorf("State() = %s, want %s", s.State(), StateFailed)
		}
	})

	t.Run("Classifier Failure Fails At Routing", func(t *testing.T) {
		b := &scriptedBackend{classifyErr: backend.ErrClassificationUnavailable}
		s := newTestSession(t, b)

		_, err := s.Submit(ctx, "anything")
		var qe *QueryError
		if !errors.As(err, &qe) || qe.Stage != StateRouting {
			t.Fatalf("Submit() error = %v, want *QueryError at %s", err, StateRouting)
		}
		if !errors.Is(err, backend.ErrClassificationUnavailable) {
			t.Errorf("Submit() error = %v, want wrapped classification error", err)
		}
	})

	t.Run("Nonconforming Output Fails At Validating", func(t *testing.T) {
		b := &scriptedBackend{
			classification: backend.Classification{
				Handler: specialist.NameSkillGap,
				Arguments: map[string]interface{}{
					"user_skills": []interface{}{"python"},
					"target_job":  "data scientist",
				},
			},
			summarizeRaw: json.RawMessage(`{"target_job": "data scientist"}`),
		}
		s := newTestSession(t, b)

		_, err := s.Submit(ctx, "what am I missing?")
		var qe *QueryError
		if !errors.As(err, &qe) || qe.Stage != StateValidating {
			t.Fatalf("Submit() error = %v, want *QueryError at %s", err, StateValidating)
		}
		var violation *schema.Violation
		if !errors.As(err, &violation) {
			t.Errorf("Submit() error = %v, want wrapped *schema.Violation", err)
		}
	})

	t.Run("Empty Query Rejected", func(t *testing.T) {
		s := newTestSession(t, &scriptedBackend{})
		if _, err := s.Submit(ctx, "   "); !errors.Is(err, career.ErrEmptyQuery) {
			t.Errorf("Submit() error = %v, want %v", err, career.ErrEmptyQuery)
		}
		if s.State() != StateIdle {
			t.Errorf("State() = %s, want %s", s.State(), StateIdle)
		}
	})

	t.Run("Oversized Query Rejected", func(t *testing.T) {
		s := newTestSession(t, &scriptedBackend{})
		long := make([]byte, 2001)
		for i := range long {
			long[i] = 'a'
		}
		if _, err := s.Submit(ctx, string(long)); !errors.Is(err, career.ErrQueryTooLong) {
			t.Errorf("Submit() error = %v, want %v", err, career.ErrQueryTooLong)
		}
	})

	t.Run("Session Recovers After Failure", func(t *testing.T) {
		b := &scriptedBackend{classifyErr: errors.New("transient")}
		s := newTestSession(t, b)

		if _, err := s.Submit(ctx, "first"); err == nil {
			t.Fatal("Submit() error = nil, want routing failure")
		}

		b.classifyErr = nil
		b.classification = backend.Classification{Reply: "ok"}
		result, err := s.Submit(ctx, "second")
		if err != nil {
			t.Fatalf("Submit() after failure error = %v", err)
		}
		if result.Kind != model.KindUnhandled {
			t.Errorf("Submit() kind = %s, want %s", result.Kind, model.KindUnhandled)
		}
	})
}
