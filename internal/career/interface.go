package career

import (
	"context"

	"careermate/internal/model"
)

// DataProvider is the read-only source for career data. The core never
// writes through it; implementations backed by live data sources are
// responsible for their own concurrency safety.
type DataProvider interface {
	// SkillsForRole returns the required skills for a role in catalog
	// order. Returns ErrRoleNotFound for unknown roles.
	SkillsForRole(ctx context.Context, role string) ([]string, error)

	// ListingsMatching returns every listing whose full requirement set
	// is contained in the given skills.
	ListingsMatching(ctx context.Context, skills []string) ([]model.JobListing, error)

	// CoursesFor returns catalog courses for one skill. An unknown skill
	// yields an empty slice, not an error.
	CoursesFor(ctx context.Context, skill string) ([]string, error)
}
