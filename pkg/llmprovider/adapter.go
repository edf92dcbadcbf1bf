package llmprovider

import (
	"context"
	"strings"

	"careermate/pkg/deepseek"
	"careermate/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface.
// The wire protocol is OpenAI-compatible and text-only: message parts are
// flattened to content strings and function declarations are ignored.
type DeepSeekAdapter struct {
	client *deepseek.Client
	name   string
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client *deepseek.Client) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client, name: "deepseek"}
}

// NewOpenAICompatAdapter wraps the DeepSeek client for any endpoint
// speaking the OpenAI chat completions protocol.
func NewOpenAICompatAdapter(client *deepseek.Client, name string) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: text}},
		},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, m := range msgs {
		contents[i] = *convertToGeminiContent(&m)
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return out
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for DeepSeek

func convertToDeepSeekMessages(req *Request) []deepseek.Message {
	var messages []deepseek.Message

	if req.SystemInstruction != nil {
		messages = append(messages, deepseek.Message{
			Role:    "system",
			Content: flattenParts(req.SystemInstruction.Parts),
		})
	}

	for _, m := range req.Messages {
		role := m.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, deepseek.Message{
			Role:    role,
			Content: flattenParts(m.Parts),
		})
	}

	return messages
}

func flattenParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
