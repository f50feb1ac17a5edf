// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/platform/httpx"
)

// ErrNilComponent reports a page without a component to render.
var ErrNilComponent = errors.New("page component is required")

// WritePage renders component into a buffer and writes it with status. Nothing
// reaches w when rendering fails, so callers can still write an error page.
func WritePage(w http.ResponseWriter, r *http.Request, status int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if component == nil {
		return ErrNilComponent
	}
	if status <= 0 {
		status = http.StatusOK
	}
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return nil
}
