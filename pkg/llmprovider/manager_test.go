package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"careermate/pkg/llmprovider"
	"careermate/pkg/log"
)

// fakeProvider scripts a sequence of errors before succeeding.
type fakeProvider struct {
	name     string
	failures int
	calls    int
	text     string
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient failure")
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: f.text}}},
		ProviderName: f.name,
		ModelName:    "fake-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "fake-model" }

func managerConfig() *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestManagerGenerateContent(t *testing.T) {
	ctx := context.Background()
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Parts: []llmprovider.Part{{Text: "hi"}}}},
	}

	t.Run("first provider succeeds", func(t *testing.T) {
		p := &fakeProvider{name: "a", text: "ok"}
		m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), log.NewNop())

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.Text() != "ok" {
			t.Errorf("unexpected text: %q", resp.Text())
		}
	})

	t.Run("retry within provider", func(t *testing.T) {
		p := &fakeProvider{name: "a", failures: 1, text: "second try"}
		m := llmprovider.NewManager([]llmprovider.Provider{p}, managerConfig(), log.NewNop())

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.calls != 2 {
			t.Errorf("expected 2 calls, got %d", p.calls)
		}
		if resp.ProviderName != "a" {
			t.Errorf("unexpected provider: %s", resp.ProviderName)
		}
	})

	t.Run("fallback to next provider", func(t *testing.T) {
		bad := &fakeProvider{name: "bad", failures: 10}
		good := &fakeProvider{name: "good", text: "fallback"}
		m := llmprovider.NewManager([]llmprovider.Provider{bad, good}, managerConfig(), log.NewNop())

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.Text() != "fallback" {
			t.Errorf("unexpected text: %q", resp.Text())
		}
	})

	t.Run("fallback disabled stops at first provider", func(t *testing.T) {
		bad := &fakeProvider{name: "bad", failures: 10}
		good := &fakeProvider{name: "good", text: "unused"}
		cfg := managerConfig()
		cfg.FallbackEnabled = false
		m := llmprovider.NewManager([]llmprovider.Provider{bad, good}, cfg, log.NewNop())

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if good.calls != 0 {
			t.Errorf("second provider should not be called")
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		m := llmprovider.NewManager([]llmprovider.Provider{
			&fakeProvider{name: "a", failures: 10},
			&fakeProvider{name: "b", failures: 10},
		}, managerConfig(), log.NewNop())

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("no providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, managerConfig(), log.NewNop())
		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
