package backend

import (
	"context"
	"encoding/json"

	"careermate/pkg/llmprovider"
)

// Generator is the slice of llmprovider.Manager the backend consumes.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Candidate describes one specialist handler to the classifier.
type Candidate struct {
	Name              string
	IntentDescription string
	Parameters        map[string]interface{} // the bound tool's argument schema
}

// Classification is the structured outcome of a classify call. Handler is
// empty when no candidate applies; Reply then carries the free-form answer.
type Classification struct {
	Handler   string                 `json:"handler"`
	Arguments map[string]interface{} `json:"arguments"`
	Reply     string                 `json:"reply"`
}

// Backend is the language-understanding service the core delegates to. It
// classifies queries against candidate handlers and shapes tool results
// into target schemas; it is never a source of new facts.
type Backend interface {
	Classify(ctx context.Context, query string, candidates []Candidate) (Classification, error)
	Summarize(ctx context.Context, toolResult interface{}, targetSchema map[string]interface{}) (json.RawMessage, error)
}
