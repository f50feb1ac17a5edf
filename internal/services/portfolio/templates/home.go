package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

// HomePage renders the landing page: hero, skills, experience and contact.
func HomePage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.render(ctx, Hero(page))
		m.render(ctx, Skills(page))
		m.render(ctx, Experience(page))
		m.render(ctx, Contact(page))
		return m.done()
	})
	return Layout(page, T(page.Loc, "title.home"), body)
}

// Hero renders the introduction section.
func Hero(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		site := page.site()
		personal := site.Personal
		m := newMarkup(w)
		m.raw(`<section class="hero" id="home"><div class="container hero-grid">`)
		if personal.Headshot != "" {
			m.raw(`<div class="hero-photo"><img`)
			m.url("src", personal.Headshot)
			m.attr("alt", T(page.Loc, "hero.headshot_alt", personal.Name))
			m.raw(` data-hide-on-error></div>`)
		}
		m.raw(`<div class="hero-text">`)
		m.element("h1", "hero-name", personal.Name)
		m.element("p", "hero-title", T(page.Loc, "hero.year_title", personal.ClassYear, personal.Title))
		m.raw(`<div class="hero-education">`)
		m.element("p", "", joinDot(personal.Major, personal.Minor))
		m.element("p", "", joinDot(personal.Institution, personal.Graduation))
		m.raw(`</div>`)
		if personal.Tagline != "" {
			m.element("p", "hero-tagline", personal.Tagline)
		}
		m.raw(`<div class="hero-actions">`)
		contact := routepath.Fragment(routepath.ContactSection)
		m.raw(`<a class="button button-primary"`)
		m.attr("href", contact)
		writeTargetAttrs(m, navigation.Parse(contact))
		m.raw(">")
		m.text(T(page.Loc, "hero.get_in_touch"))
		m.raw(`</a><a class="button button-outline"`)
		m.attr("href", routepath.Projects)
		m.raw(">")
		m.text(T(page.Loc, "hero.view_projects"))
		m.raw(`</a></div><div class="social-links hero-social">`)
		for _, link := range site.Social {
			socialLink(m, link, "social-link")
		}
		m.raw(`</div></div></div>`)
		skills := routepath.Fragment(routepath.SkillsSection)
		m.raw(`<a class="hero-scroll"`)
		m.attr("href", skills)
		writeTargetAttrs(m, navigation.Parse(skills))
		m.attr("aria-label", T(page.Loc, "hero.scroll_down"))
		m.raw(">")
		writeIcon(m, icons.IDChevronDown, "")
		m.raw(`</a></section>`)
		return m.done()
	})
}

func joinDot(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " • " + b
	}
}

func sectionHeader(m *markup, title, subtitle string) {
	m.raw(`<header class="section-header">`)
	m.element("h2", "section-title", title)
	if subtitle != "" {
		m.element("p", "section-subtitle", subtitle)
	}
	m.raw(`</header>`)
}

// Skills renders the skill categories in authored order.
func Skills(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "section skills")
		m.attr("id", routepath.SkillsSection)
		m.raw(`><div class="container">`)
		sectionHeader(m, T(page.Loc, "skills.heading"), T(page.Loc, "skills.subtitle"))
		m.raw(`<div class="skills-grid">`)
		for _, category := range page.site().Skills {
			m.raw(`<div class="skill-category">`)
			m.element("h3", "skill-category-name", category.Name)
			m.raw(`<ul class="skill-list">`)
			for _, skill := range category.Skills {
				m.element("li", "skill", skill)
			}
			m.raw(`</ul></div>`)
		}
		m.raw(`</div></div></section>`)
		return m.done()
	})
}

// Experience renders the experience timeline.
func Experience(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<section class="section experience" id="experience"><div class="container">`)
		sectionHeader(m, T(page.Loc, "experience.heading"), T(page.Loc, "experience.subtitle"))
		m.raw(`<div class="experience-list">`)
		for _, entry := range page.site().Experience {
			m.raw(`<article class="experience-card"`)
			m.attr("data-experience-type", string(entry.Type))
			m.raw(`><div class="experience-header"><div class="experience-icon">`)
			writeIcon(m, ForExperience(entry.Type), "")
			m.raw(`</div><div class="experience-heading">`)
			m.element("span", "experience-type", string(entry.Type))
			m.element("h3", "experience-role", entry.Role)
			m.element("p", "experience-org", entry.Organization)
			if entry.Location != "" {
				m.element("p", "experience-location", entry.Location)
			}
			m.raw(`</div>`)
			if entry.Period != "" {
				m.element("span", "experience-period", entry.Period)
			}
			m.raw(`</div><ul class="experience-points">`)
			for _, point := range entry.Description {
				m.element("li", "", point)
			}
			m.raw(`</ul></article>`)
		}
		m.raw(`</div></div></section>`)
		return m.done()
	})
}

// Contact renders the contact cards and calls to action.
func Contact(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		personal := page.site().Personal
		m := newMarkup(w)
		m.open("section", "section contact")
		m.attr("id", routepath.ContactSection)
		m.raw(`><div class="container">`)
		sectionHeader(m, T(page.Loc, "contact.heading"), personal.ContactPitch)
		m.raw(`<div class="contact-cards">`)
		if personal.Email != "" {
			contactCard(m, "mailto:"+personal.Email, icons.IDEmail, T(page.Loc, "contact.email"), personal.Email, false)
		}
		if personal.LinkedIn != "" {
			contactCard(m, personal.LinkedIn, icons.IDLinkedIn, T(page.Loc, "contact.linkedin"), T(page.Loc, "contact.linkedin_cta"), true)
		}
		if personal.GitHub != "" {
			contactCard(m, personal.GitHub, icons.IDGitHub, T(page.Loc, "contact.github"), T(page.Loc, "contact.github_cta"), true)
		}
		m.raw(`</div><div class="contact-actions">`)
		if personal.Email != "" {
			m.raw(`<a class="button button-primary"`)
			m.url("href", "mailto:"+personal.Email)
			m.raw(">")
			writeIcon(m, icons.IDEmail, "")
			m.text(T(page.Loc, "contact.send_email"))
			m.raw(`</a>`)
		}
		if personal.Resume != "" {
			m.raw(`<a class="button button-outline"`)
			m.url("href", personal.Resume)
			m.flag("download")
			m.raw(">")
			writeIcon(m, icons.IDDownload, "")
			m.text(T(page.Loc, "contact.download_resume"))
			m.raw(`</a>`)
		}
		m.raw(`</div>`)
		if personal.Location != "" {
			m.raw(`<p class="contact-location">`)
			writeIcon(m, icons.IDMapPin, "")
			m.raw(`<span>`)
			if personal.Relocation != "" {
				m.text(T(page.Loc, "contact.location", personal.Location, personal.Relocation))
			} else {
				m.text(T(page.Loc, "footer.location", personal.Location))
			}
			m.raw(`</span></p>`)
		}
		m.raw(`</div></section>`)
		return m.done()
	})
}

func contactCard(m *markup, href string, icon icons.ID, label, detail string, newTab bool) {
	m.raw(`<a class="contact-card"`)
	m.url("href", href)
	if newTab {
		external(m)
	}
	m.raw(`><span class="contact-card-icon">`)
	writeIcon(m, icon, "")
	m.raw(`</span><span class="contact-card-text">`)
	m.element("span", "contact-card-label", label)
	m.element("span", "contact-card-detail", detail)
	m.raw(`</span></a>`)
}
