package templates

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/narrative"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in content is dropped; goldmark only emits it with html.WithUnsafe.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Prose renders Markdown source.
func Prose(source string, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(source), &buf); err != nil {
			return err
		}
		m := newMarkup(w)
		m.open("div", classes("prose", class))
		m.raw(">", buf.String(), "</div>")
		return m.done()
	})
}

// Narrative renders text through the narrative formatter.
func Narrative(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="narrative">`)
		for fragment := range narrative.Format(text) {
			switch fragment.Kind {
			case narrative.KindSpacer:
				m.raw(`<div class="narrative-spacer"></div>`)
			case narrative.KindHeading:
				m.element("h3", "narrative-heading", fragment.Text)
			case narrative.KindBullet:
				m.raw(`<p class="narrative-bullet"><span class="narrative-dot" aria-hidden="true"></span><span>`)
				m.text(fragment.Text)
				m.raw(`</span></p>`)
			default:
				m.element("p", "narrative-paragraph", fragment.Text)
			}
		}
		m.raw(`</div>`)
		return m.done()
	})
}
