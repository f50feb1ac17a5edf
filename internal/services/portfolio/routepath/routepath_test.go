package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Projects != "/projects" {
		t.Fatalf("Projects = %q", Projects)
	}
	if About != "/about" {
		t.Fatalf("About = %q", About)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if ProjectPattern != "/project/{slug}" {
		t.Fatalf("ProjectPattern = %q", ProjectPattern)
	}
}

func TestProjectEscapesSlug(t *testing.T) {
	t.Parallel()

	if got := Project("fpga-guitar-hero"); got != "/project/fpga-guitar-hero" {
		t.Fatalf("Project() = %q", got)
	}
	if got := Project(" a/b "); got != "/project/a%2Fb" {
		t.Fatalf("Project() = %q", got)
	}
}

func TestFragmentHelpers(t *testing.T) {
	t.Parallel()

	if got := Fragment(ContactSection); got != "#contact" {
		t.Fatalf("Fragment() = %q", got)
	}
	if got := RootFragment(ContactSection); got != "/#contact" {
		t.Fatalf("RootFragment() = %q", got)
	}
	if got := Static("/site.css"); got != "/static/site.css" {
		t.Fatalf("Static() = %q", got)
	}
}
