package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// markup writes HTML and remembers the first write error.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute, replacing unsafe schemes.
func (m *markup) url(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) flag(name string) {
	m.raw(" ", name)
}

// open writes a start tag with class and leaves it open for attributes.
func (m *markup) open(tag, class string) {
	m.raw("<", tag)
	if class != "" {
		m.attr("class", class)
	}
}

func (m *markup) element(tag, class, text string) {
	m.open(tag, class)
	m.raw(">")
	m.text(text)
	m.raw("</", tag, ">")
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *markup) done() error {
	return m.err
}

func classes(names ...string) string {
	kept := names[:0:0]
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

func external(m *markup) {
	m.attr("target", "_blank")
	m.attr("rel", "noopener noreferrer")
}
