package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
)

var experienceIcons = map[content.ExperienceType]icons.ID{
	content.ExperienceLeadership:      icons.IDBriefcase,
	content.ExperienceExtracurricular: icons.IDUsers,
	content.ExperienceWork:            icons.IDAward,
}

// ForExperience maps an experience type to its icon, falling back to the
// generic work icon.
func ForExperience(kind content.ExperienceType) icons.ID {
	if id, ok := experienceIcons[kind]; ok {
		return id
	}
	return icons.IDBriefcase
}

// Icon renders a sprite reference for id.
func Icon(id icons.ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		writeIcon(m, id, class)
		return m.done()
	})
}

func writeIcon(m *markup, id icons.ID, class string) {
	m.open("svg", classes("icon", class))
	m.attr("aria-hidden", "true")
	m.raw("><use")
	m.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
	m.raw("></use></svg>")
}

// socialLink writes an icon link. Only mail links stay in the current tab.
func socialLink(m *markup, link content.SocialLink, class string) {
	m.open("a", class)
	m.url("href", link.URL)
	if link.Icon != icons.IDEmail {
		external(m)
	}
	m.attr("aria-label", link.Name)
	m.raw(">")
	writeIcon(m, link.Icon, "")
	m.raw("</a>")
}
