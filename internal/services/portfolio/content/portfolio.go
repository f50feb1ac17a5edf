package content

// Portfolio is one validated content snapshot. Snapshots are shared between
// concurrent requests and must not be modified after Load returns them.
type Portfolio struct {
	Personal   PersonalInfo
	Nav        []NavItem
	Social     []SocialLink
	Experience []Experience
	Skills     []SkillCategory
	About      AboutPage
	Projects   []Project

	bySlug map[string]int
}

func newPortfolio(doc siteDocument, projects []Project) *Portfolio {
	p := &Portfolio{
		Personal:   doc.Personal,
		Nav:        doc.Nav,
		Social:     doc.Social,
		Experience: doc.Experience,
		Skills:     doc.Skills,
		About:      doc.About,
		Projects:   projects,
		bySlug:     make(map[string]int, len(projects)),
	}
	for i, project := range projects {
		p.bySlug[project.Slug] = i
	}
	return p
}

// FindProjectBySlug returns the project whose slug equals slug exactly.
func (p *Portfolio) FindProjectBySlug(slug string) (Project, bool) {
	if p == nil {
		return Project{}, false
	}
	i, ok := p.bySlug[slug]
	if !ok {
		return Project{}, false
	}
	return p.Projects[i], true
}

// Slugs lists project slugs in display order.
func (p *Portfolio) Slugs() []string {
	if p == nil {
		return nil
	}
	slugs := make([]string, 0, len(p.Projects))
	for _, project := range p.Projects {
		slugs = append(slugs, project.Slug)
	}
	return slugs
}
