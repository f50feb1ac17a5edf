package portfolio

import (
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/i18n"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/templates"
	"go.uber.org/zap"
)

type handlers struct {
	store  content.Store
	logger *zap.Logger
	now    func() time.Time
}

func (h *handlers) page(r *http.Request) templates.PageContext {
	tag := i18n.ResolveTag(r)
	return templates.PageContext{
		Lang:        tag.String(),
		Loc:         i18n.Printer(tag),
		CurrentPath: r.URL.Path,
		Year:        h.now().Year(),
		Site:        h.store.Portfolio(),
	}
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, templates.HomePage(h.page(r)))
}

func (h *handlers) projects(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, templates.ProjectsPage(h.page(r)))
}

// project renders one project. Unknown slugs go back to the listing.
func (h *handlers) project(w http.ResponseWriter, r *http.Request) {
	page := h.page(r)
	project, ok := page.Site.FindProjectBySlug(r.PathValue("slug"))
	if !ok {
		httpx.WriteRedirect(w, r, routepath.Projects)
		return
	}
	h.render(w, r, http.StatusOK, templates.ProjectPage(page, project))
}

func (h *handlers) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, templates.AboutPage(h.page(r)))
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, templates.ErrorPage(h.page(r), http.StatusNotFound))
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

// render writes component, falling back to the error page and then to a bare
// 500 when rendering fails.
func (h *handlers) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	err := pagerender.WritePage(w, r, status, component)
	if err == nil {
		return
	}
	h.logger.Error("render page",
		zap.String("path", r.URL.Path),
		zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
		zap.Error(err),
	)
	errPage := templates.ErrorPage(h.page(r), http.StatusInternalServerError)
	if err := pagerender.WritePage(w, r, http.StatusInternalServerError, errPage); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
