package tools

import (
	"context"
	"fmt"

	"careermate/internal/agent"
	"careermate/internal/career"
	"careermate/internal/model"
	"careermate/internal/schema"
)

// RecommendCoursesInput are the arguments for the recommend_courses tool.
type RecommendCoursesInput struct {
	MissingSkills []string `json:"missing_skills" jsonschema_description:"A list of skills the user needs to learn"`
}

// RecommendCoursesTool looks up catalog courses for missing skills.
type RecommendCoursesTool struct {
	provider career.DataProvider
}

// NewRecommendCoursesTool creates a new course recommendation tool.
func NewRecommendCoursesTool(provider career.DataProvider) agent.Tool {
	return &RecommendCoursesTool{provider: provider}
}

func (t *RecommendCoursesTool) Name() string {
	return "recommend_courses"
}

func (t *RecommendCoursesTool) Description() string {
	return "Recommend online courses to help the user learn missing skills."
}

func (t *RecommendCoursesTool) Parameters() map[string]interface{} {
	return schema.Generate(&RecommendCoursesInput{})
}

// Execute returns one recommendation per requested skill in input order.
// Skills without catalog entries are silently omitted, not an error.
func (t *RecommendCoursesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input RecommendCoursesInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	recommendations := make([]model.CourseRecommendation, 0, len(input.MissingSkills))
	for _, skill := range input.MissingSkills {
		courses, err := t.provider.CoursesFor(ctx, skill)
		if err != nil {
			return nil, fmt.Errorf("courses for %q: %w", skill, err)
		}
		if len(courses) == 0 {
			continue
		}
		recommendations = append(recommendations, model.CourseRecommendation{
			Skill:   skill,
			Courses: courses,
		})
	}

	return recommendations, nil
}
