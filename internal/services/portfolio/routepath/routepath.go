// Package routepath stores canonical HTTP paths for the portfolio site.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Projects       = "/projects"
	ProjectPrefix  = "/project/"
	ProjectPattern = ProjectPrefix + "{slug}"
	About          = "/about"
	Health         = "/up"
	StaticPrefix   = "/static/"
	FilesPrefix    = "/files/"
	ImagesPrefix   = "/images/"
	Headshot       = "/headshot.jpeg"
	ContactSection = "contact"
	SkillsSection  = "skills"
)

// Project returns the project detail route.
func Project(slug string) string {
	return ProjectPrefix + escapeSegment(slug)
}

// Static returns the route of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimLeft(name, "/")
}

// Fragment returns an in-page anchor href.
func Fragment(id string) string {
	return "#" + id
}

// RootFragment returns an href that lands on a home page section.
func RootFragment(id string) string {
	return Root + Fragment(id)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
