// Package export renders the portfolio into a directory of static files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/static"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// NotFoundPath is requested to render the 404 page.
const NotFoundPath = "/404"

const defaultConcurrency = 4

// ErrNavigation is returned in strict mode when the navigation check finds
// problems.
var ErrNavigation = errors.New("navigation check failed")

// Options configures an export run.
type Options struct {
	OutDir string
	// AssetsDir is copied into OutDir as-is when set.
	AssetsDir   string
	Strict      bool
	Handler     http.Handler
	Site        *content.Portfolio
	Logger      *zap.Logger
	Concurrency int
}

// Route is one exported page.
type Route struct {
	Path   string
	File   string
	Status int
}

// Report summarizes an export run.
type Report struct {
	Files  []string
	Issues []Issue
}

// Routes lists every page of site in a stable order.
func Routes(site *content.Portfolio) []Route {
	routes := []Route{
		pageRoute(routepath.Root),
		pageRoute(routepath.Projects),
	}
	for _, slug := range site.Slugs() {
		routes = append(routes, pageRoute(routepath.Project(slug)))
	}
	routes = append(routes,
		pageRoute(routepath.About),
		Route{Path: NotFoundPath, File: "404.html", Status: http.StatusNotFound},
	)
	return routes
}

func pageRoute(p string) Route {
	return Route{
		Path:   p,
		File:   path.Join(strings.Trim(p, "/"), "index.html"),
		Status: http.StatusOK,
	}
}

// Run renders every route through opts.Handler into opts.OutDir, copies the
// static and public assets, then checks navigation across the rendered pages.
func Run(ctx context.Context, opts Options) (Report, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return Report{}, errors.New("output directory is required")
	}
	if opts.Handler == nil {
		return Report{}, errors.New("handler is required")
	}
	if opts.Site == nil {
		return Report{}, errors.New("site content is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	routes := Routes(opts.Site)
	bodies := make([][]byte, len(routes))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(concurrency)
	for i, route := range routes {
		p.Go(func(ctx context.Context) error {
			body, err := render(ctx, opts.Handler, route)
			if err != nil {
				return err
			}
			if err := writeFile(filepath.Join(opts.OutDir, filepath.FromSlash(route.File)), body); err != nil {
				return err
			}
			bodies[i] = body
			logger.Debug("exported page", zap.String("path", route.Path), zap.String("file", route.File))
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{}
	for _, route := range routes {
		report.Files = append(report.Files, route.File)
	}

	staticFiles, err := copyTree(filepath.Join(opts.OutDir, "static"), static.FS)
	if err != nil {
		return report, fmt.Errorf("copy static assets: %w", err)
	}
	report.Files = append(report.Files, prefixed("static", staticFiles)...)
	if dir := strings.TrimSpace(opts.AssetsDir); dir != "" {
		assetFiles, err := copyTree(opts.OutDir, os.DirFS(dir))
		if err != nil {
			return report, fmt.Errorf("copy public assets: %w", err)
		}
		report.Files = append(report.Files, assetFiles...)
	}

	pages := make(map[string][]byte, len(routes))
	for i, route := range routes {
		pages[route.Path] = bodies[i]
	}
	site, err := NewSite(pages)
	if err != nil {
		return report, err
	}
	report.Issues = CheckNavigation(ctx, site)
	for _, issue := range report.Issues {
		logger.Warn("navigation issue",
			zap.String("page", issue.Page),
			zap.String("href", issue.Href),
			zap.String("problem", issue.Problem),
		)
	}
	logger.Info("export complete",
		zap.String("out", opts.OutDir),
		zap.Int("pages", len(routes)),
		zap.Int("files", len(report.Files)),
		zap.Int("navigation_issues", len(report.Issues)),
	)
	if opts.Strict && len(report.Issues) > 0 {
		return report, fmt.Errorf("%w: %d issue(s)", ErrNavigation, len(report.Issues))
	}
	return report, nil
}

func render(ctx context.Context, handler http.Handler, route Route) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, route.Path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != route.Status {
		return nil, fmt.Errorf("render %s: status %d, want %d", route.Path, rec.Code, route.Status)
	}
	return rec.Body.Bytes(), nil
}

func writeFile(name string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(name, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// copyTree copies every regular file of fsys under dst, overwriting existing
// files, and returns the copied slash paths.
func copyTree(dst string, fsys fs.FS) ([]string, error) {
	var copied []string
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dst, filepath.FromSlash(name)), body); err != nil {
			return err
		}
		copied = append(copied, name)
		return nil
	})
	return copied, err
}

func prefixed(dir string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = path.Join(dir, name)
	}
	return out
}
