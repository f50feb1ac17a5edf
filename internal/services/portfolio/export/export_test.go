package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paul-wang1/portfolio/internal/services/portfolio"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
)

func loadSite(t *testing.T) *content.Portfolio {
	t.Helper()
	site, err := content.Load(content.Embedded())
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	return site
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	site := loadSite(t)
	routes := Routes(site)
	if len(routes) != len(site.Projects)+4 {
		t.Fatalf("routes = %d, want %d", len(routes), len(site.Projects)+4)
	}
	want := []Route{
		{Path: "/", File: "index.html", Status: http.StatusOK},
		{Path: "/projects", File: "projects/index.html", Status: http.StatusOK},
		{Path: "/project/" + site.Projects[0].Slug, File: "project/" + site.Projects[0].Slug + "/index.html", Status: http.StatusOK},
	}
	if diff := cmp.Diff(want, routes[:3]); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	last := routes[len(routes)-1]
	if last.File != "404.html" || last.Status != http.StatusNotFound {
		t.Fatalf("last route = %+v, want 404 page", last)
	}
}

func TestRunWritesSite(t *testing.T) {
	t.Parallel()

	site := loadSite(t)
	handler, err := portfolio.NewHandler(portfolio.Config{Store: content.NewStaticStore(site)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	assets := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assets, "images"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assets, "images", "a.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	out := t.TempDir()
	report, err := Run(context.Background(), Options{
		OutDir:    out,
		AssetsDir: assets,
		Strict:    true,
		Handler:   handler,
		Site:      site,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("navigation issues = %+v", report.Issues)
	}
	files := []string{
		"index.html",
		"projects/index.html",
		"project/" + site.Projects[0].Slug + "/index.html",
		"about/index.html",
		"404.html",
		"static/site.css",
		"static/site.js",
		"images/a.png",
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRunNotFoundPageSendsUnknownProjectsToListing(t *testing.T) {
	t.Parallel()

	site := loadSite(t)
	handler, err := portfolio.NewHandler(portfolio.Config{Store: content.NewStaticStore(site)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	out := t.TempDir()
	if _, err := Run(context.Background(), Options{OutDir: out, Handler: handler, Site: site}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	page, err := os.ReadFile(filepath.Join(out, "404.html"))
	if err != nil {
		t.Fatalf("read 404.html: %v", err)
	}
	for _, want := range []string{`<script data-unknown-project>`, `indexOf("/project/") === 0`, `window.location.replace("/projects")`} {
		if !strings.Contains(string(page), want) {
			t.Fatalf("404.html missing %q", want)
		}
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if strings.Contains(string(index), "data-unknown-project") {
		t.Fatal("index.html must not carry the unknown project redirect")
	}
}

func fakeSiteHandler(pages map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok || r.URL.Path == NotFoundPath {
			w.WriteHeader(http.StatusNotFound)
		}
		_, _ = io.WriteString(w, body)
	})
}

func TestRunStrictFailsOnNavigationIssues(t *testing.T) {
	t.Parallel()

	handler := fakeSiteHandler(map[string]string{
		"/":         `<section id="contact"></section>`,
		"/projects": `<a data-nav-link href="/#missing">Missing</a>`,
		"/about":    `<a data-nav-link href="/#contact">Contact</a>`,
		"/404":      ``,
	})
	opts := Options{OutDir: t.TempDir(), Handler: handler, Site: &content.Portfolio{}}

	report, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []Issue{{Page: "/projects", Href: "/#missing", Problem: problemMissingTarget}}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	opts.OutDir = t.TempDir()
	opts.Strict = true
	if _, err := Run(context.Background(), opts); !errors.Is(err, ErrNavigation) {
		t.Fatalf("Run(strict) error = %v, want %v", err, ErrNavigation)
	}
}

func TestRunFailsOnUnexpectedStatus(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := Run(context.Background(), Options{OutDir: t.TempDir(), Handler: handler, Site: &content.Portfolio{}})
	if err == nil {
		t.Fatal("expected render error")
	}
}

func TestRunValidatesOptions(t *testing.T) {
	t.Parallel()

	handler := fakeSiteHandler(nil)
	tests := map[string]Options{
		"missing out dir": {Handler: handler, Site: &content.Portfolio{}},
		"missing handler": {OutDir: t.TempDir(), Site: &content.Portfolio{}},
		"missing site":    {OutDir: t.TempDir(), Handler: handler},
	}
	for name, opts := range tests {
		if _, err := Run(context.Background(), opts); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
