package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careermate/internal/agent"
	"careermate/internal/career"
	"careermate/internal/model"
	"careermate/internal/schema"
)

// SkillGapInput are the arguments for the skill_gap tool.
type SkillGapInput struct {
	UserSkills []string `json:"user_skills" jsonschema_description:"The skills the user already has"`
	TargetJob  string   `json:"target_job" jsonschema_description:"The job title the user is aiming for"`
}

// SkillGapTool compares the user's skills against a target role's
// requirements.
type SkillGapTool struct {
	provider career.DataProvider
}

// NewSkillGapTool creates a new skill gap tool.
func NewSkillGapTool(provider career.DataProvider) agent.Tool {
	return &SkillGapTool{provider: provider}
}

func (t *SkillGapTool) Name() string {
	return "skill_gap"
}

func (t *SkillGapTool) Description() string {
	return "Identify missing skills by comparing the user's current skills with the required skills for a given target job."
}

func (t *SkillGapTool) Parameters() map[string]interface{} {
	return schema.Generate(&SkillGapInput{})
}

// Execute returns the target role's required skills minus the user's
// skills, preserving the requirement order. Empty exactly when the user
// already covers every requirement.
func (t *SkillGapTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input SkillGapInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	required, err := t.provider.SkillsForRole(ctx, input.TargetJob)
	if err != nil {
		return nil, fmt.Errorf("skills for role %q: %w", input.TargetJob, err)
	}

	have := make(map[string]struct{}, len(input.UserSkills))
	for _, s := range input.UserSkills {
		have[s] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if _, ok := have[skill]; !ok {
			missing = append(missing, skill)
		}
	}

	return model.SkillGap{
		TargetJob:     input.TargetJob,
		MissingSkills: missing,
		Explanation:   fmt.Sprintf("To become a %s, you need to learn: %s", input.TargetJob, strings.Join(missing, ", ")),
	}, nil
}

// decodeParams maps schema-validated params into a typed input struct.
func decodeParams(params map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}
