// Package navigation classifies navigation links and drives the navigation
// bar's menu, scroll and activation behavior.
//
// Links are parsed once into a Target. Active-link highlighting, click
// handling and the data attributes consumed by the browser script all read
// the same Target, so they cannot disagree about what a link means.
package navigation

import "strings"

// Kind is the shape of a navigation target.
type Kind int

const (
	// KindPlain is a path without a fragment, such as "/projects".
	KindPlain Kind = iota
	// KindFragment is an in-page anchor, such as "#contact".
	KindFragment
	// KindCompound is a path with a fragment, such as "/#contact".
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindFragment:
		return "fragment"
	case KindCompound:
		return "compound"
	default:
		return "plain"
	}
}

const fragmentMarker = "#"

// Target is a parsed navigation href. Fragment never includes the marker.
type Target struct {
	Kind     Kind
	Href     string
	Path     string
	Fragment string
}

// Parse classifies href. Compound targets split at the first marker.
func Parse(href string) Target {
	if rest, ok := strings.CutPrefix(href, fragmentMarker); ok {
		return Target{Kind: KindFragment, Href: href, Fragment: rest}
	}
	if path, fragment, ok := strings.Cut(href, fragmentMarker); ok {
		return Target{Kind: KindCompound, Href: href, Path: path, Fragment: fragment}
	}
	return Target{Kind: KindPlain, Href: href, Path: href}
}

// Location is where the viewer currently is.
type Location struct {
	Path     string
	Fragment string
}

// ParseLocation splits a request URI into path and fragment. Query strings
// are dropped and an empty path becomes "/".
func ParseLocation(raw string) Location {
	rest, fragment, _ := strings.Cut(raw, fragmentMarker)
	path, _, _ := strings.Cut(rest, "?")
	if path == "" {
		path = "/"
	}
	return Location{Path: path, Fragment: fragment}
}

// String renders the location as a URI reference.
func (l Location) String() string {
	if l.Fragment == "" {
		return l.Path
	}
	return l.Path + fragmentMarker + l.Fragment
}

// IsRoot reports whether path names the site root, ignoring slash style.
func IsRoot(path string) bool {
	return strings.Trim(path, "/") == ""
}

// Active reports whether t should be highlighted at loc. A bare "#" target
// is never active.
func (t Target) Active(loc Location) bool {
	switch t.Kind {
	case KindFragment:
		return t.Fragment != "" && IsRoot(loc.Path) && loc.Fragment == t.Fragment
	case KindCompound:
		return loc.Path == t.Path || (IsRoot(t.Path) && IsRoot(loc.Path))
	default:
		return loc.Path == t.Path
	}
}
