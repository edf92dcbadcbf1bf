package model

// ResultKind tags the populated variant of a StructuredResult.
type ResultKind string

const (
	KindSkillGap              ResultKind = "skill_gap"
	KindJobListings           ResultKind = "job_listings"
	KindCourseRecommendations ResultKind = "course_recommendations"
	KindUnhandled             ResultKind = "unhandled"
)

// SkillGap describes the skills missing for a target role.
type SkillGap struct {
	TargetJob     string   `json:"target_job" jsonschema:"required"`
	MissingSkills []string `json:"missing_skills" jsonschema:"required"`
	Explanation   string   `json:"explanation" jsonschema:"required"`
}

// JobListing is a single job opening.
type JobListing struct {
	Title        string   `json:"title" jsonschema:"required"`
	Company      string   `json:"company" jsonschema:"required"`
	Location     string   `json:"location" jsonschema:"required"`
	Requirements []string `json:"requirements" jsonschema:"required"`
}

// CourseRecommendation lists courses for one skill.
type CourseRecommendation struct {
	Skill   string   `json:"skill" jsonschema:"required"`
	Courses []string `json:"courses" jsonschema:"required"`
}

// StructuredResult is the tagged union returned for every query.
// Exactly one variant field is populated, matching Kind. Unhandled carries
// free text and means no specialist claimed the query; it is not a failure.
type StructuredResult struct {
	Kind                  ResultKind             `json:"kind"`
	SkillGap              *SkillGap              `json:"skill_gap,omitempty"`
	JobListings           []JobListing           `json:"job_listings,omitempty"`
	CourseRecommendations []CourseRecommendation `json:"course_recommendations,omitempty"`
	Unhandled             string                 `json:"unhandled,omitempty"`
}

// NewUnhandled builds the free-text variant.
func NewUnhandled(text string) StructuredResult {
	return StructuredResult{Kind: KindUnhandled, Unhandled: text}
}
