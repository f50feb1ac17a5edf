package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
)

const (
	errorTitleNotFoundKey    = "title.not_found"
	errorTitleServerErrKey   = "title.server_error"
	errorMessageNotFoundKey  = "error.not_found"
	errorMessageServerErrKey = "error.server_error"
)

// ErrorPageTitle returns the heading for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorMessageNotFoundKey)
	}
	return T(loc, errorMessageServerErrKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorPage renders a not-found or server error page in the site chrome.
func ErrorPage(page PageContext, statusCode int) templ.Component {
	title := ErrorPageTitle(statusCode, page.Loc)
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<section class="section error-page page-top"><div class="container container-narrow">`)
		writeIcon(m, icons.IDAlert, "error-icon")
		m.element("h1", "section-title", title)
		m.element("p", "section-subtitle", errorMessage(statusCode, page.Loc))
		m.raw(`<a class="button button-primary"`)
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(T(page.Loc, "error.home"))
		m.raw(`</a></div></section>`)
		return m.done()
	})
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return layout(page, title, unknownProjectRedirect(), body)
	}
	return Layout(page, title, body)
}

// unknownProjectRedirect sends project paths that reach the not-found page
// to the project listing. Static hosts serve 404.html for any missing path,
// so the check runs in the browser before the page is shown.
func unknownProjectRedirect() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<script data-unknown-project>if (window.location.pathname.indexOf(`)
		m.raw(strconv.Quote(routepath.ProjectPrefix))
		m.raw(`) === 0) { window.location.replace(`)
		m.raw(strconv.Quote(routepath.Projects))
		m.raw(`); }</script>`)
		return m.done()
	})
}
