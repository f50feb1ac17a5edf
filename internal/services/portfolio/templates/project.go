package templates

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

const youTubeEmbedBase = "https://www.youtube.com/embed/"

// ProjectPage renders one project in full.
func ProjectPage(page PageContext, project content.Project) templ.Component {
	return Layout(page, project.Title, ProjectDetail(page, project))
}

// ProjectDetail renders the project body. Gallery, video and document blocks
// appear only when the project has that media.
func ProjectDetail(page PageContext, project content.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<article class="project-detail page-top"><div class="container container-narrow">`)
		backLink(m, T(page.Loc, "project.back"), "back-link")

		m.raw(`<header class="project-hero">`)
		m.element("span", "project-type", project.Type)
		m.element("h1", "project-detail-title", project.Title)
		m.element("p", "project-detail-description", project.Description)
		if project.GitHubURL != "" || project.LiveURL != "" {
			m.raw(`<div class="project-links">`)
			if project.GitHubURL != "" {
				m.raw(`<a class="button button-primary"`)
				m.url("href", project.GitHubURL)
				external(m)
				m.raw(">")
				writeIcon(m, icons.IDGitHub, "")
				m.text(T(page.Loc, "project.github"))
				m.raw(`</a>`)
			}
			if project.LiveURL != "" {
				m.raw(`<a class="button button-outline"`)
				m.url("href", project.LiveURL)
				external(m)
				m.raw(">")
				writeIcon(m, icons.IDExternalLink, "")
				m.text(T(page.Loc, "project.live"))
				m.raw(`</a>`)
			}
			m.raw(`</div>`)
		}
		if project.HeroImage != "" {
			m.raw(`<div class="project-hero-image"><img`)
			m.url("src", project.HeroImage)
			m.attr("alt", project.Title)
			m.raw(` data-hide-on-error></div>`)
		}
		m.raw(`</header>`)

		if project.Problem != "" {
			m.raw(`<section class="project-section" id="problem">`)
			m.element("h2", "project-section-title", T(page.Loc, "project.problem"))
			m.render(ctx, Prose(project.Problem, ""))
			m.raw(`</section>`)
		}
		if project.Solution != "" {
			m.raw(`<section class="project-section" id="solution">`)
			m.element("h2", "project-section-title", T(page.Loc, "project.solution"))
			m.render(ctx, Prose(project.Solution, ""))
			m.raw(`</section>`)
		}

		m.raw(`<section class="project-section" id="implementation">`)
		m.element("h2", "project-section-title", T(page.Loc, "project.implementation"))
		m.render(ctx, Narrative(project.Implementation))
		if len(project.Images) > 0 {
			writeGallery(m, page, project.Images)
		}
		if len(project.Videos) > 0 {
			writeVideos(m, page, project.Videos)
		}
		if project.Document != nil {
			writeDocument(m, page, *project.Document)
		}
		m.raw(`</section>`)

		m.raw(`<section class="project-section" id="technologies">`)
		m.element("h2", "project-section-title", T(page.Loc, "project.tech"))
		m.raw(`<ul class="tech-tags">`)
		for _, tech := range project.TechStack {
			m.element("li", "tech-tag", tech)
		}
		m.raw(`</ul></section>`)

		m.raw(`<div class="project-footer">`)
		backLink(m, T(page.Loc, "project.back_all"), "button button-outline")
		m.raw(`</div></div></article>`)
		return m.done()
	})
}

func backLink(m *markup, label, class string) {
	m.open("a", class)
	m.attr("href", routepath.Projects)
	m.raw(">")
	writeIcon(m, icons.IDArrowLeft, "")
	m.text(label)
	m.raw(`</a>`)
}

func writeGallery(m *markup, page PageContext, images []content.Image) {
	m.raw(`<div class="gallery" data-gallery>`)
	m.element("h3", "gallery-title", T(page.Loc, "project.gallery"))
	for _, image := range images {
		m.raw(`<figure class="gallery-item"><img`)
		m.url("src", image.Path)
		m.attr("alt", image.Caption)
		m.raw(` loading="lazy" data-hide-on-error>`)
		if image.Caption != "" {
			m.element("figcaption", "", image.Caption)
		}
		m.raw(`</figure>`)
	}
	m.raw(`</div>`)
}

func writeVideos(m *markup, page PageContext, videos []content.Video) {
	m.raw(`<div class="videos" data-videos>`)
	for i, video := range videos {
		title := video.Caption
		if title == "" {
			title = T(page.Loc, "project.video_title", i+1)
		}
		m.raw(`<figure class="video"><div class="video-frame"><iframe`)
		m.url("src", youTubeEmbedBase+url.PathEscape(video.YouTubeID))
		m.attr("title", title)
		m.raw(` loading="lazy" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>`)
		if video.Caption != "" {
			m.element("figcaption", "", video.Caption)
		}
		m.raw(`</figure>`)
	}
	m.raw(`</div>`)
}

func writeDocument(m *markup, page PageContext, doc content.Document) {
	title := doc.Title
	if title == "" {
		title = T(page.Loc, "project.document_default")
	}
	m.raw(`<div class="document" data-document>`)
	m.element("h3", "document-title", title)
	m.raw(`<div class="document-frame"><iframe`)
	m.url("src", doc.Path)
	m.attr("title", title)
	m.raw(` loading="lazy"></iframe></div><a class="button button-primary"`)
	m.url("href", doc.Path)
	m.flag("download")
	m.raw(">")
	writeIcon(m, icons.IDDownload, "")
	m.text(T(page.Loc, "project.document_download"))
	m.raw(`</a></div>`)
}
