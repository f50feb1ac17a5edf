package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

// techPreviewLimit is how many technologies a project card lists.
const techPreviewLimit = 5

// ProjectsPage renders the project listing.
func ProjectsPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "title.projects"), ProjectList(page))
}

// ProjectList renders every project card or the empty state.
func ProjectList(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		projects := page.site().Projects
		m := newMarkup(w)
		m.raw(`<section class="section projects page-top"><div class="container">`)
		sectionHeader(m, T(page.Loc, "projects.heading"), T(page.Loc, "projects.subtitle"))
		if len(projects) == 0 {
			m.element("p", "projects-empty", T(page.Loc, "projects.empty"))
			m.raw(`</div></section>`)
			return m.done()
		}
		m.raw(`<div class="project-list">`)
		for i, project := range projects {
			projectCard(m, page, project, i%2 == 1)
		}
		m.raw(`</div></div></section>`)
		return m.done()
	})
}

func projectCard(m *markup, page PageContext, project content.Project, flipped bool) {
	flip := ""
	if flipped {
		flip = "is-flipped"
	}
	m.open("a", classes("project-card", flip))
	m.attr("href", routepath.Project(project.Slug))
	m.attr("data-project-slug", project.Slug)
	m.raw(`><div class="project-card-info">`)
	if project.Featured {
		m.raw(`<span class="badge badge-featured">`)
		writeIcon(m, icons.IDCheck, "")
		m.text(T(page.Loc, "projects.featured"))
		m.raw(`</span>`)
	}
	m.element("span", "project-type", project.Type)
	m.element("h3", "project-title", project.Title)
	m.element("p", "project-description", project.Description)
	m.raw(`<ul class="tech-tags">`)
	preview, overflow := techPreview(project.TechStack)
	for _, tech := range preview {
		m.element("li", "tech-tag", tech)
	}
	if overflow > 0 {
		m.element("li", "tech-tag tech-more", T(page.Loc, "projects.more_tech", overflow))
	}
	m.raw(`</ul><span class="project-view">`)
	m.text(T(page.Loc, "projects.view"))
	writeIcon(m, icons.IDArrowRight, "")
	m.raw(`</span></div><div class="project-card-visual">`)
	if project.HeroImage != "" {
		m.raw(`<img`)
		m.url("src", project.HeroImage)
		m.attr("alt", project.Title)
		m.raw(` loading="lazy" data-hide-on-error>`)
	} else {
		m.raw(`<div class="project-placeholder">`)
		writeIcon(m, icons.IDCode, "")
		m.element("span", "", T(page.Loc, "projects.image_placeholder"))
		m.raw(`</div>`)
	}
	m.raw(`</div></a>`)
}

// techPreview splits a tech stack into the tags shown on a card and the
// number left out.
func techPreview(stack []string) ([]string, int) {
	if len(stack) <= techPreviewLimit {
		return stack, 0
	}
	return stack[:techPreviewLimit], len(stack) - techPreviewLimit
}
