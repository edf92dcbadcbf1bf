package backend

// Log prefixes
const (
	LogPrefixClassify  = "internal.backend.Classify"
	LogPrefixSummarize = "internal.backend.Summarize"
)

// Classification prompts
const (
	PromptClassifySystem = `You are an intent classifier for a career planning assistant. You are given a user query and a list of specialist handlers. Choose AT MOST ONE handler whose description best matches the user's goal, and produce arguments for its tool conforming to the tool's parameter schema.

Rules:
- Select exactly one handler, or none if no handler applies.
- Never select a handler that is not in the list.
- Arguments must contain only fields from the parameter schema. Extract them from the query; use empty lists when the user gave no skills.
- If no handler applies, answer the query yourself in "reply".

Respond with JSON only, no markdown:
{"handler": "<handler name or empty string>", "arguments": {...}, "reply": "<free-form answer, only when no handler applies>"}`

	PromptClassifyUser = `Specialist handlers:
%s
User query: %q`

	PromptCandidateEntry = `- name: %s
  when to use: %s
  tool parameter schema: %s`
)

// Summarization prompts
const (
	PromptSummarizeSystem = `You format deterministic tool output into a target JSON schema. Every value in your output must be traceable to the tool result: never invent skills, jobs, courses, or any other fact that is not present in it. Respond with JSON only, no markdown.`

	PromptSummarizeUser = `Tool result:
%s

Target JSON schema:
%s

Produce a single JSON value conforming to the schema.`
)

// Generation configuration
const (
	ClassifyTemperature  = 0.1
	SummarizeTemperature = 0.0
)

// Log messages
const (
	LogMsgClassified      = "Classified as %q"
	LogMsgNoSelection     = "No handler selected"
	LogMsgEmptyResponse   = "Empty LLM response, treating as no selection"
	LogMsgJSONParseFailed = "Failed to parse classification JSON, treating reply as free text"
	LogMsgSummarizeEmpty  = "Empty summarization response"
)
