package export

import (
	"context"

	"github.com/paul-wang1/portfolio/internal/services/portfolio/navigation"
)

// Issue is a navigation link that would not land where it points.
type Issue struct {
	Page    string
	Href    string
	Problem string
}

const (
	problemMissingPage   = "destination page was not rendered"
	problemMissingTarget = "scroll target missing on destination"
	problemListenerLeak  = "scroll listener left registered"
)

// CheckNavigation activates every navigation link on every page through a
// navigation.Bar and reports links whose destination or scroll target does
// not exist. NotFoundPath never counts as a destination.
func CheckNavigation(ctx context.Context, site *Site) []Issue {
	var issues []Issue
	for _, from := range site.Paths() {
		for _, link := range site.Links(from) {
			if problem := activate(ctx, site, from, link.Href); problem != "" {
				issues = append(issues, Issue{Page: from, Href: link.Href, Problem: problem})
			}
		}
	}
	return issues
}

func activate(ctx context.Context, site *Site, from, href string) string {
	viewport := site.Viewport(from)
	bar := navigation.NewBar(viewport, navigation.Options{})
	bar.Mount()
	action := bar.Activate(ctx, navigation.Parse(href), navigation.ParseLocation(from))
	bar.Wait()
	bar.Unmount()

	if viewport.Listeners() != 0 {
		return problemListenerLeak
	}
	if action.Navigate != "" {
		dest := viewport.Current()
		if dest == NotFoundPath || !site.Has(dest) {
			return problemMissingPage
		}
	}
	if action.ScrollTo == "" {
		return ""
	}
	for _, scroll := range viewport.Scrolls() {
		if scroll.ID == action.ScrollTo && scroll.Found {
			return ""
		}
	}
	return problemMissingTarget
}
