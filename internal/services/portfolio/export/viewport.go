package export

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
	"golang.org/x/net/html"
)

// Link is a navigation link found on a rendered page.
type Link struct {
	Href string
	Text string
}

type page struct {
	ids   map[string]struct{}
	links []Link
}

// Site indexes rendered pages by path.
type Site struct {
	pages map[string]page
}

// NewSite parses rendered pages keyed by request path.
func NewSite(pages map[string][]byte) (*Site, error) {
	site := &Site{pages: make(map[string]page, len(pages))}
	for p, body := range pages {
		doc, err := html.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		indexed := page{ids: make(map[string]struct{})}
		indexNode(doc, &indexed)
		site.pages[p] = indexed
	}
	return site, nil
}

func indexNode(n *html.Node, into *page) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" {
			into.ids[id] = struct{}{}
		}
		if n.Data == "a" && hasAttr(n, "data-nav-link") {
			into.links = append(into.links, Link{Href: attr(n, "href"), Text: textOf(n)})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		indexNode(c, into)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return string(bytes.TrimSpace(buf.Bytes()))
}

// Paths lists the indexed page paths in sorted order.
func (s *Site) Paths() []string {
	paths := make([]string, 0, len(s.pages))
	for p := range s.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Has reports whether a page was rendered at p.
func (s *Site) Has(p string) bool {
	_, ok := s.pages[p]
	return ok
}

// Links returns the navigation links rendered on the page at p.
func (s *Site) Links(p string) []Link {
	return s.pages[p].links
}

// HasID reports whether the page at p has an element with id.
func (s *Site) HasID(p, id string) bool {
	_, ok := s.pages[p].ids[id]
	return ok
}

// Viewport returns a viewport positioned on the page at p.
func (s *Site) Viewport(p string) *SiteViewport {
	return &SiteViewport{site: s, current: p}
}

// SiteViewport walks the rendered site the way a browser tab would. Pages
// are static, so navigation mounts immediately and no scroll events fire.
type SiteViewport struct {
	site *Site

	mu        sync.Mutex
	current   string
	listeners int
	scrolls   []Scroll
}

// Scroll records one scroll attempt.
type Scroll struct {
	Page  string
	ID    string
	Found bool
}

var _ navigation.Viewport = (*SiteViewport)(nil)

// ListenScroll registers fn. Static pages never scroll, so fn is never called.
func (v *SiteViewport) ListenScroll(func(offset float64)) func() {
	v.mu.Lock()
	v.listeners++
	v.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			v.listeners--
			v.mu.Unlock()
		})
	}
}

// Navigate moves to href and reports readiness at once.
func (v *SiteViewport) Navigate(href string) <-chan struct{} {
	loc := navigation.ParseLocation(href)
	v.mu.Lock()
	v.current = loc.Path
	v.mu.Unlock()
	ready := make(chan struct{})
	close(ready)
	return ready
}

// ScrollTo reports whether the current page has an element with id.
func (v *SiteViewport) ScrollTo(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	found := v.site.HasID(v.current, id)
	v.scrolls = append(v.scrolls, Scroll{Page: v.current, ID: id, Found: found})
	return found
}

// Current returns the path of the page in view.
func (v *SiteViewport) Current() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Scrolls returns the scroll attempts made so far.
func (v *SiteViewport) Scrolls() []Scroll {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Scroll(nil), v.scrolls...)
}

// Listeners returns the number of registered scroll listeners.
func (v *SiteViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.listeners
}
