package export

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
)

func testSite(t *testing.T) *Site {
	t.Helper()
	site, err := NewSite(map[string][]byte{
		"/": []byte(`<nav><a data-nav-link href="/">Home</a><a data-nav-link href="/#contact">Contact</a></nav>` +
			`<a data-nav-link href="#skills">Skills</a><section id="skills"></section><section id="contact"></section>`),
		"/about": []byte(`<nav><a data-nav-link href="/#contact">Contact</a><a data-nav-link href="/gone">Gone</a>` +
			`<a href="/files/resume.pdf">Resume</a></nav>`),
	})
	if err != nil {
		t.Fatalf("NewSite() error = %v", err)
	}
	return site
}

func TestSiteIndexesIDsAndNavLinks(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	if !site.HasID("/", "contact") || site.HasID("/about", "contact") {
		t.Fatal("unexpected id index")
	}
	want := []Link{{Href: "/#contact", Text: "Contact"}, {Href: "/gone", Text: "Gone"}}
	if diff := cmp.Diff(want, site.Links("/about")); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/", "/about"}, site.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestSiteViewportDrivesCrossPageScroll(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	viewport := site.Viewport("/about")
	bar := navigation.NewBar(viewport, navigation.Options{})
	bar.Mount()
	if viewport.Listeners() != 1 {
		t.Fatalf("listeners = %d, want 1", viewport.Listeners())
	}
	action := bar.Activate(context.Background(), navigation.Parse("/#contact"), navigation.ParseLocation("/about"))
	bar.Wait()
	bar.Unmount()

	if !action.AfterMount || action.Navigate != "/" {
		t.Fatalf("action = %+v, want deferred navigation to root", action)
	}
	if got := viewport.Current(); got != "/" {
		t.Fatalf("current = %q, want /", got)
	}
	want := []Scroll{{Page: "/", ID: "contact", Found: true}}
	if diff := cmp.Diff(want, viewport.Scrolls()); diff != "" {
		t.Fatalf("scrolls mismatch (-want +got):\n%s", diff)
	}
	if viewport.Listeners() != 0 {
		t.Fatalf("listeners after unmount = %d, want 0", viewport.Listeners())
	}
}

func TestCheckNavigationReportsMissingPages(t *testing.T) {
	t.Parallel()

	issues := CheckNavigation(context.Background(), testSite(t))
	want := []Issue{{Page: "/about", Href: "/gone", Problem: problemMissingPage}}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckNavigationCanceledContextSkipsDeferredScroll(t *testing.T) {
	t.Parallel()

	site, err := NewSite(map[string][]byte{
		"/":      []byte(`<section id="contact"></section>`),
		"/about": []byte(`<a data-nav-link href="/#contact">Contact</a>`),
	})
	if err != nil {
		t.Fatalf("NewSite() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	issues := CheckNavigation(ctx, site)
	want := []Issue{{Page: "/about", Href: "/#contact", Problem: problemMissingTarget}}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
