package tools

import (
	"context"
	"fmt"
	"strings"

	"careermate/internal/agent"
	"careermate/internal/career"
	"careermate/internal/schema"
)

// FindJobsInput are the arguments for the find_jobs tool.
type FindJobsInput struct {
	UserSkills []string `json:"user_skills" jsonschema_description:"A list of skills the user possesses"`
	Location   string   `json:"location,omitempty" jsonschema_description:"Optional preferred job location"`
}

// FindJobsTool matches job listings against the user's skills.
type FindJobsTool struct {
	provider career.DataProvider
}

// NewFindJobsTool creates a new job matching tool.
func NewFindJobsTool(provider career.DataProvider) agent.Tool {
	return &FindJobsTool{provider: provider}
}

func (t *FindJobsTool) Name() string {
	return "find_jobs"
}

func (t *FindJobsTool) Description() string {
	return "Find job listings whose required skills the user already covers, optionally filtered by location."
}

func (t *FindJobsTool) Parameters() map[string]interface{} {
	return schema.Generate(&FindJobsInput{})
}

// Execute returns every listing whose full requirement set is covered by
// the user's skills. The location filter is a case-insensitive substring
// match.
func (t *FindJobsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input FindJobsInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	listings, err := t.provider.ListingsMatching(ctx, input.UserSkills)
	if err != nil {
		return nil, fmt.Errorf("listings matching: %w", err)
	}

	if input.Location == "" {
		return listings, nil
	}

	wanted := strings.ToLower(input.Location)
	filtered := listings[:0]
	for _, listing := range listings {
		if strings.Contains(strings.ToLower(listing.Location), wanted) {
			filtered = append(filtered, listing)
		}
	}

	return filtered, nil
}
