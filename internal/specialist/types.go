package specialist

import "careermate/internal/model"

// Handler binds one registered tool to one structured-output schema and a
// natural-language description of when it applies. Handlers are immutable:
// built once at startup, never mutated.
type Handler struct {
	// Name uniquely identifies the handler toward the classifier.
	Name string

	// IntentDescription tells the classifier when this handler applies.
	// It is never parsed programmatically.
	IntentDescription string

	// ToolName is the registry name of the handler's single tool.
	ToolName string

	// OutputKind tags the StructuredResult variant this handler produces.
	OutputKind model.ResultKind

	// OutputSchema is the JSON schema the summarized output must satisfy.
	OutputSchema map[string]interface{}
}

// Find returns the handler with the given name from the set, or false when
// the name is not present. Used by the router to fail closed on names the
// classifier invents.
func Find(handlers []Handler, name string) (Handler, bool) {
	for _, h := range handlers {
		if h.Name == name {
			return h, true
		}
	}
	return Handler{}, false
}
