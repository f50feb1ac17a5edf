package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

// AboutPage renders the personal page.
func AboutPage(page PageContext) templ.Component {
	return Layout(page, page.site().About.Title, About(page))
}

// About renders the personal page body.
func About(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		site := page.site()
		about := site.About
		m := newMarkup(w)
		m.raw(`<div class="about page-top"><section class="section about-hero"><div class="container container-narrow">`)
		m.element("h1", "about-title", about.Title)
		if about.Subtitle != "" {
			m.element("p", "about-subtitle", about.Subtitle)
		}
		m.raw(`</div></section>`)

		if about.HeroImage != "" {
			m.raw(`<div class="container container-narrow about-image"><img`)
			m.url("src", about.HeroImage)
			m.attr("alt", site.Personal.Name)
			m.raw(` data-hide-on-error></div>`)
		}

		if len(about.Bio) > 0 {
			m.raw(`<section class="section about-bio"><div class="container container-narrow">`)
			for _, paragraph := range about.Bio {
				m.render(ctx, Prose(paragraph, "about-paragraph"))
			}
			m.raw(`</div></section>`)
		}

		if len(about.Photos) > 0 {
			m.raw(`<section class="section about-photos" id="photos"><div class="container">`)
			m.element("h2", "section-title", T(page.Loc, "about.snapshots"))
			m.raw(`<div class="photo-grid">`)
			for _, photo := range about.Photos {
				m.raw(`<figure class="photo"><img`)
				m.url("src", photo.Path)
				m.attr("alt", photo.Caption)
				m.raw(` loading="lazy" data-hide-on-error="parent">`)
				if photo.Caption != "" {
					m.element("figcaption", "", photo.Caption)
				}
				m.raw(`</figure>`)
			}
			m.raw(`</div></div></section>`)
		}

		if len(about.Hobbies) > 0 {
			m.raw(`<section class="section about-hobbies"><div class="container">`)
			m.element("h2", "section-title", T(page.Loc, "about.hobbies"))
			m.raw(`<ul class="hobby-list">`)
			for _, hobby := range about.Hobbies {
				m.element("li", "hobby", hobby)
			}
			m.raw(`</ul></div></section>`)
		}

		if len(about.FunFacts) > 0 {
			m.raw(`<section class="section about-facts"><div class="container container-narrow">`)
			m.element("h2", "section-title", T(page.Loc, "about.fun_facts"))
			m.raw(`<ul class="fact-list">`)
			for _, fact := range about.FunFacts {
				m.element("li", "", fact)
			}
			m.raw(`</ul></div></section>`)
		}

		contact := routepath.RootFragment(routepath.ContactSection)
		m.raw(`<section class="section about-cta"><div class="container container-narrow">`)
		m.element("h2", "section-title", T(page.Loc, "about.cta_heading"))
		m.element("p", "about-cta-body", T(page.Loc, "about.cta_body"))
		m.raw(`<a class="button button-primary"`)
		m.attr("href", contact)
		writeTargetAttrs(m, navigation.Parse(contact))
		m.raw(">")
		m.text(T(page.Loc, "about.cta_button"))
		writeIcon(m, icons.IDArrowRight, "")
		m.raw(`</a></div></section></div>`)
		return m.done()
	})
}
