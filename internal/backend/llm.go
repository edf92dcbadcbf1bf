package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careermate/pkg/llmprovider"
	"careermate/pkg/log"
)

// LLM implements Backend on top of the provider chain.
type LLM struct {
	gen Generator
	l   log.Logger
}

var _ Backend = (*LLM)(nil)

// New creates an LLM backend.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(gen Generator, l log.Logger) *LLM {
	return &LLM{
		gen: gen,
		l:   l,
	}
}

// Classify asks the model to pick at most one candidate handler and build
// tool arguments for it. An unparseable response degrades to no selection
// with the raw text as reply, never an error.
func (b *LLM) Classify(ctx context.Context, query string, candidates []Candidate) (Classification, error) {
	entries := make([]string, 0, len(candidates))
	for _, c := range candidates {
		schemaJSON, err := json.Marshal(c.Parameters)
		if err != nil {
			return Classification{}, fmt.Errorf("%s: marshal parameters for %s: %w", LogPrefixClassify, c.Name, err)
		}
		entries = append(entries, fmt.Sprintf(PromptCandidateEntry, c.Name, c.IntentDescription, schemaJSON))
	}

	req := &llmprovider.Request{
		SystemInstruction: textMessage("system", PromptClassifySystem),
		Messages: []llmprovider.Message{
			*textMessage("user", fmt.Sprintf(PromptClassifyUser, strings.Join(entries, "\n"), query)),
		},
		Temperature: ClassifyTemperature,
	}

	resp, err := b.gen.GenerateContent(ctx, req)
	if err != nil {
		return Classification{}, mapGenerateError(err)
	}

	text := stripCodeFences(resp.Text())
	if text == "" {
		b.l.Warnf(ctx, "%s: %s", LogPrefixClassify, LogMsgEmptyResponse)
		return Classification{}, nil
	}

	var out Classification
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		b.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, LogMsgJSONParseFailed, err)
		return Classification{Reply: text}, nil
	}

	if out.Handler == "" {
		b.l.Infof(ctx, "%s: %s", LogPrefixClassify, LogMsgNoSelection)
	} else {
		b.l.Infof(ctx, "%s: "+LogMsgClassified, LogPrefixClassify, out.Handler)
	}
	return out, nil
}

// Summarize shapes a deterministic tool result into the target schema. The
// returned JSON is validated by the caller; the model contributes no facts.
func (b *LLM) Summarize(ctx context.Context, toolResult interface{}, targetSchema map[string]interface{}) (json.RawMessage, error) {
	resultJSON, err := json.Marshal(toolResult)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal tool result: %w", LogPrefixSummarize, err)
	}
	schemaJSON, err := json.Marshal(targetSchema)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal schema: %w", LogPrefixSummarize, err)
	}

	req := &llmprovider.Request{
		SystemInstruction: textMessage("system", PromptSummarizeSystem),
		Messages: []llmprovider.Message{
			*textMessage("user", fmt.Sprintf(PromptSummarizeUser, resultJSON, schemaJSON)),
		},
		Temperature: SummarizeTemperature,
	}

	resp, err := b.gen.GenerateContent(ctx, req)
	if err != nil {
		return nil, mapGenerateError(err)
	}

	text := stripCodeFences(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("%s: %s", LogPrefixSummarize, LogMsgSummarizeEmpty)
	}

	return json.RawMessage(text), nil
}

func textMessage(role, text string) *llmprovider.Message {
	return &llmprovider.Message{
		Role:  role,
		Parts: []llmprovider.Part{{Text: text}},
	}
}

// stripCodeFences removes markdown code blocks some models wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
