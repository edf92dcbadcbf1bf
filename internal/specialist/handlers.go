package specialist

import (
	"fmt"

	"careermate/internal/agent"
	"careermate/internal/model"
	"careermate/internal/schema"
)

// Specialist handler names.
const (
	NameSkillGap          = "skill-gap-specialist"
	NameJobFinder         = "job-finder-specialist"
	NameCourseRecommender = "course-recommender-specialist"
)

// BuildHandlers returns the specialist set in classification order. Every
// handler's tool must already be registered; a missing tool is a wiring
// bug and fatal at startup.
func BuildHandlers(registry *agent.ToolRegistry) ([]Handler, error) {
	handlers := []Handler{
		{
			Name:              NameSkillGap,
			IntentDescription: "Identifies skill gaps for a given career goal, e.g. the user mentions a job they want to become.",
			ToolName:          "skill_gap",
			OutputKind:        model.KindSkillGap,
			OutputSchema:      schema.Generate(&model.SkillGap{}),
		},
		{
			Name:              NameJobFinder,
			IntentDescription: "Suggests job listings based on the user's current skills and optionally a preferred location.",
			ToolName:          "find_jobs",
			OutputKind:        model.KindJobListings,
			OutputSchema:      schema.Generate([]model.JobListing{}),
		},
		{
			Name:              NameCourseRecommender,
			IntentDescription: "Finds learning resources and courses for skills the user wants to learn or is missing.",
			ToolName:          "recommend_courses",
			OutputKind:        model.KindCourseRecommendations,
			OutputSchema:      schema.Generate([]model.CourseRecommendation{}),
		},
	}

	for _, h := range handlers {
		if _, ok := registry.Get(h.ToolName); !ok {
			return nil, fmt.Errorf("handler %s: tool %s not registered", h.Name, h.ToolName)
		}
	}

	return handlers, nil
}
