package router

import (
	"context"
	"fmt"

	"careermate/internal/backend"
	"careermate/internal/specialist"
)

// Route asks the backend to classify the query against the handler set and
// returns a single-handoff decision. A classification naming a handler
// outside the set fails closed: it becomes no selection, never a blind
// dispatch to an out-of-band name.
// Convention: Method accepts context.Context as first parameter
func (r *IntentRouter) Route(ctx context.Context, query string, handlers []specialist.Handler) (Decision, error) {
	candidates := make([]backend.Candidate, 0, len(handlers))
	for _, h := range handlers {
		tool, ok := r.registry.Get(h.ToolName)
		if !ok {
			return Decision{}, fmt.Errorf("%s: handler %s references unregistered tool %s", LogPrefixRoute, h.Name, h.ToolName)
		}
		candidates = append(candidates, backend.Candidate{
			Name:              h.Name,
			IntentDescription: h.IntentDescription,
			Parameters:        tool.Parameters(),
		})
	}

	classification, err := r.backend.Classify(ctx, query, candidates)
	if err != nil {
		return Decision{}, err
	}

	if classification.Handler == "" {
		r.l.Infof(ctx, "%s: %s", LogPrefixRoute, LogMsgNoSelection)
		return Decision{Reply: classification.Reply}, nil
	}

	selected, ok := specialist.Find(handlers, classification.Handler)
	if !ok {
		r.l.Warnf(ctx, "%s: "+LogMsgUnresolvedHandoff, LogPrefixRoute, classification.Handler)
		return Decision{Reply: classification.Reply}, nil
	}

	r.l.Infof(ctx, "%s: "+LogMsgSelected, LogPrefixRoute, selected.Name)
	return Decision{
		Handler:   &selected,
		Arguments: classification.Arguments,
	}, nil
}
