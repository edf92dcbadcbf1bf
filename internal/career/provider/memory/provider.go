package memory

import (
	"context"
	"strings"

	"careermate/internal/career"
	"careermate/internal/model"
)

// Provider is an in-memory career.DataProvider. All fields are fixed at
// construction, so it is safe for concurrent reads.
type Provider struct {
	roleSkills map[string][]string // lowercase role -> ordered required skills
	listings   []model.JobListing
	courses    map[string][]string // skill -> courses, case-sensitive like the catalog
}

var _ career.DataProvider = (*Provider)(nil)

// Data seeds a Provider.
type Data struct {
	RoleSkills map[string][]string
	Listings   []model.JobListing
	Courses    map[string][]string
}

// New creates a Provider from the given data. Role names are matched
// case-insensitively; skill names are matched exactly.
func New(data Data) *Provider {
	roleSkills := make(map[string][]string, len(data.RoleSkills))
	for role, skills := range data.RoleSkills {
		roleSkills[strings.ToLower(role)] = skills
	}

	return &Provider{
		roleSkills: roleSkills,
		listings:   data.Listings,
		courses:    data.Courses,
	}
}

// SkillsForRole implements career.DataProvider.
func (p *Provider) SkillsForRole(ctx context.Context, role string) ([]string, error) {
	skills, ok := p.roleSkills[strings.ToLower(role)]
	if !ok {
		return nil, career.ErrRoleNotFound
	}

	out := make([]string, len(skills))
	copy(out, skills)
	return out, nil
}

// ListingsMatching implements career.DataProvider. A listing matches when
// every one of its requirements appears in skills.
func (p *Provider) ListingsMatching(ctx context.Context, skills []string) ([]model.JobListing, error) {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	var matches []model.JobListing
	for _, listing := range p.listings {
		matched := true
		for _, req := range listing.Requirements {
			if _, ok := have[req]; !ok {
				matched = false
				break
			}
		}
		if matched {
			matches = append(matches, listing)
		}
	}

	return matches, nil
}

// CoursesFor implements career.DataProvider.
func (p *Provider) CoursesFor(ctx context.Context, skill string) ([]string, error) {
	courses := p.courses[skill]
	out := make([]string, len(courses))
	copy(out, courses)
	return out, nil
}
