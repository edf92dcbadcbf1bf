package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek LLM client. The API is
// OpenAI-compatible, so the client also serves any endpoint speaking that
// protocol via Config.BaseURL.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}
