package backend_test

import (
	"context"
	"errors"
	"testing"

	"careermate/internal/backend"
	"careermate/pkg/llmprovider"
	"careermate/pkg/log"
)

// scriptedGenerator returns a fixed text or error.
type scriptedGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: g.text}}},
		Usage:   &llmprovider.Usage{},
	}, nil
}

var candidates = []backend.Candidate{
	{Name: "skill-gap-specialist", IntentDescription: "skill gaps", Parameters: map[string]interface{}{"type": "object"}},
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("parses handler selection", func(t *testing.T) {
		gen := &scriptedGenerator{
			text: `{"handler":"skill-gap-specialist","arguments":{"target_job":"data scientist","user_skills":[]}}`,
		}
		b := backend.New(gen, log.NewNop())

		c, err := b.Classify(ctx, "I want to become a data scientist", candidates)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.Handler != "skill-gap-specialist" {
			t.Errorf("unexpected handler: %q", c.Handler)
		}
		if c.Arguments["target_job"] != "data scientist" {
			t.Errorf("unexpected arguments: %v", c.Arguments)
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		gen := &scriptedGenerator{
			text: "```json\n{\"handler\":\"skill-gap-specialist\",\"arguments\":{}}\n```",
		}
		b := backend.New(gen, log.NewNop())

		c, err := b.Classify(ctx, "q", candidates)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.Handler != "skill-gap-specialist" {
			t.Errorf("unexpected handler: %q", c.Handler)
		}
	})

	t.Run("unparseable response degrades to free text", func(t *testing.T) {
		gen := &scriptedGenerator{text: "Hello! I can help with careers."}
		b := backend.New(gen, log.NewNop())

		c, err := b.Classify(ctx, "hi", candidates)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.Handler != "" || c.Reply == "" {
			t.Errorf("expected free-text fallback, got %+v", c)
		}
	})

	t.Run("empty response is no selection", func(t *testing.T) {
		gen := &scriptedGenerator{text: ""}
		b := backend.New(gen, log.NewNop())

		c, err := b.Classify(ctx, "q", candidates)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.Handler != "" {
			t.Errorf("expected no selection, got %q", c.Handler)
		}
	})

	t.Run("provider timeout maps to ErrClassificationTimeout", func(t *testing.T) {
		gen := &scriptedGenerator{err: llmprovider.ErrProviderTimeout}
		b := backend.New(gen, log.NewNop())

		_, err := b.Classify(ctx, "q", candidates)
		if !errors.Is(err, backend.ErrClassificationTimeout) {
			t.Errorf("expected ErrClassificationTimeout, got %v", err)
		}
	})

	t.Run("provider failure maps to ErrClassificationUnavailable", func(t *testing.T) {
		gen := &scriptedGenerator{err: llmprovider.ErrAllProvidersFailed}
		b := backend.New(gen, log.NewNop())

		_, err := b.Classify(ctx, "q", candidates)
		if !errors.Is(err, backend.ErrClassificationUnavailable) {
			t.Errorf("expected ErrClassificationUnavailable, got %v", err)
		}
	})

	t.Run("candidate schemas reach the prompt", func(t *testing.T) {
		gen := &scriptedGenerator{text: `{"handler":""}`}
		b := backend.New(gen, log.NewNop())

		if _, err := b.Classify(ctx, "q", candidates); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if gen.lastReq == nil || len(gen.lastReq.Messages) != 1 {
			t.Fatal("expected one user message")
		}
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	targetSchema := map[string]interface{}{"type": "object"}

	t.Run("returns raw JSON", func(t *testing.T) {
		gen := &scriptedGenerator{text: "```json\n{\"target_job\":\"x\"}\n```"}
		b := backend.New(gen, log.NewNop())

		raw, err := b.Summarize(ctx, map[string]string{"target_job": "x"}, targetSchema)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if string(raw) != `{"target_job":"x"}` {
			t.Errorf("unexpected raw: %s", raw)
		}
	})

	t.Run("empty response is an error", func(t *testing.T) {
		gen := &scriptedGenerator{text: ""}
		b := backend.New(gen, log.NewNop())

		if _, err := b.Summarize(ctx, nil, targetSchema); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("backend failure maps to taxonomy", func(t *testing.T) {
		gen := &scriptedGenerator{err: errors.New("boom")}
		b := backend.New(gen, log.NewNop())

		_, err := b.Summarize(ctx, nil, targetSchema)
		if !errors.Is(err, backend.ErrClassificationUnavailable) {
			t.Errorf("expected ErrClassificationUnavailable, got %v", err)
		}
	})
}
