package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

// Layout wraps body in the document shell, navigation bar and footer.
func Layout(page PageContext, title string, body templ.Component) templ.Component {
	return layout(page, title, nil, body)
}

func layout(page PageContext, title string, head, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		site := page.site()
		m := newMarkup(w)
		m.raw(`<!DOCTYPE html><html`)
		m.attr("lang", page.lang())
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(composePageTitle(page, title))
		m.raw(`</title><meta name="description"`)
		m.attr("content", T(page.Loc, "meta.description", site.Personal.Name, site.Personal.Title, site.Personal.Institution))
		m.raw(`><link rel="stylesheet"`)
		m.attr("href", routepath.Static("site.css"))
		m.raw(`><script defer`)
		m.attr("src", routepath.Static("site.js"))
		m.raw(`></script>`)
		if head != nil {
			m.render(ctx, head)
		}
		m.raw(`</head><body>`)
		m.raw(icons.LucideSprite())
		m.render(ctx, NavBar(page))
		m.raw(`<main id="main">`)
		m.render(ctx, body)
		m.raw(`</main>`)
		m.render(ctx, Footer(page))
		m.raw(`</body></html>`)
		return m.done()
	})
}

func composePageTitle(page PageContext, title string) string {
	name := strings.TrimSpace(page.site().Personal.Name)
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return name
	case name == "":
		return title
	default:
		return T(page.Loc, "title.page", title, name)
	}
}

// NavBar renders the fixed navigation bar with desktop links and the mobile
// menu. The script reads the data attributes; it never parses hrefs.
func NavBar(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		site := page.site()
		loc := page.location()
		m := newMarkup(w)
		m.raw(`<nav class="nav" data-nav`)
		m.attr("data-scroll-threshold", strconv.Itoa(navigation.DefaultScrollThreshold))
		m.raw(`><div class="container nav-inner"><a class="nav-brand"`)
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(firstName(site.Personal.Name))
		m.raw(`</a><div class="nav-links">`)
		for _, item := range site.Nav {
			navLink(m, item, loc, "nav-link")
		}
		resumeLink(m, page, "nav-resume")
		m.raw(`</div><button type="button" class="nav-toggle" data-nav-toggle aria-expanded="false" aria-controls="nav-menu"`)
		m.attr("aria-label", T(page.Loc, "nav.toggle_menu"))
		m.raw(">")
		writeIcon(m, icons.IDMenu, "nav-toggle-open")
		writeIcon(m, icons.IDClose, "nav-toggle-close")
		m.raw(`</button></div><div class="nav-menu" id="nav-menu" data-nav-menu hidden><div class="container">`)
		for _, item := range site.Nav {
			navLink(m, item, loc, "nav-menu-link")
		}
		resumeLink(m, page, "nav-menu-resume")
		m.raw(`</div></div></nav>`)
		return m.done()
	})
}

func navLink(m *markup, item content.NavItem, loc navigation.Location, class string) {
	target := navigation.Parse(item.Href)
	active := target.Active(loc)
	activeClass := ""
	if active {
		activeClass = "is-active"
	}
	m.open("a", classes(class, activeClass))
	m.url("href", item.Href)
	writeTargetAttrs(m, target)
	if active {
		m.attr("aria-current", "page")
	}
	m.raw(">")
	m.text(item.Name)
	m.raw("</a>")
}

// writeTargetAttrs renders a parsed target for the browser script.
func writeTargetAttrs(m *markup, target navigation.Target) {
	m.flag("data-nav-link")
	m.attr("data-nav-kind", target.Kind.String())
	if target.Path != "" {
		m.attr("data-nav-path", target.Path)
	}
	if target.Fragment != "" {
		m.attr("data-nav-fragment", target.Fragment)
	}
}

func resumeLink(m *markup, page PageContext, class string) {
	resume := page.site().Personal.Resume
	if resume == "" {
		return
	}
	m.open("a", class)
	m.url("href", resume)
	external(m)
	m.raw(">")
	m.text(T(page.Loc, "nav.resume"))
	m.raw("</a>")
}

func firstName(name string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first
}

// Footer renders the site footer.
func Footer(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		site := page.site()
		personal := site.Personal
		m := newMarkup(w)
		m.raw(`<footer class="footer"><div class="container footer-grid"><div class="footer-about">`)
		m.element("h3", "footer-name", personal.Name)
		m.element("p", "footer-blurb", T(page.Loc, "footer.blurb", personal.ClassYear, personal.Title, personal.Institution, personal.Summary))
		if personal.Availability != "" {
			m.element("p", "footer-availability", personal.Availability)
		}
		m.raw(`</div><div class="footer-connect">`)
		m.element("h4", "footer-heading", T(page.Loc, "footer.connect"))
		m.raw(`<div class="social-links">`)
		for _, link := range site.Social {
			socialLink(m, link, "social-link")
		}
		m.raw(`</div>`)
		if personal.Email != "" {
			m.raw(`<a class="footer-email"`)
			m.url("href", "mailto:"+personal.Email)
			m.raw(">")
			m.text(personal.Email)
			m.raw("</a>")
		}
		m.raw(`</div></div><div class="container footer-bottom">`)
		m.element("p", "", T(page.Loc, "footer.copyright", strconv.Itoa(page.Year), personal.Name))
		if personal.Location != "" {
			m.element("p", "", T(page.Loc, "footer.location", personal.Location))
		}
		m.raw(`</div></footer>`)
		return m.done()
	})
}
