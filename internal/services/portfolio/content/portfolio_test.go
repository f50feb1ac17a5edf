package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFindProjectBySlugReturnsExactMatch(t *testing.T) {
	t.Parallel()

	p, err := Load(Embedded())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, want := range p.Projects {
		got, ok := p.FindProjectBySlug(want.Slug)
		if !ok {
			t.Fatalf("FindProjectBySlug(%q) not found", want.Slug)
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Project{})); diff != "" {
			t.Fatalf("FindProjectBySlug(%q) mismatch (-want +got):\n%s", want.Slug, diff)
		}
	}
}

func TestFindProjectBySlugAbsent(t *testing.T) {
	t.Parallel()

	p, err := Load(Embedded())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, slug := range []string{"", "nope", "IOT-WATER-MONITORING", " iot-water-monitoring", "iot-water", "../etc/passwd"} {
		got, ok := p.FindProjectBySlug(slug)
		if ok {
			t.Fatalf("FindProjectBySlug(%q) found %q", slug, got.Slug)
		}
		if diff := cmp.Diff(Project{}, got, cmpopts.IgnoreUnexported(Project{})); diff != "" {
			t.Fatalf("FindProjectBySlug(%q) returned partial record:\n%s", slug, diff)
		}
	}
}

func TestFindProjectBySlugNilPortfolio(t *testing.T) {
	t.Parallel()

	var p *Portfolio
	if _, ok := p.FindProjectBySlug("anything"); ok {
		t.Fatal("expected nil portfolio lookup to miss")
	}
}

func TestEmbeddedProjectKnownFields(t *testing.T) {
	t.Parallel()

	p, err := Load(Embedded())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	project, ok := p.FindProjectBySlug("arduino-line-following-robot")
	if !ok {
		t.Fatal("expected arduino-line-following-robot")
	}
	ids := make([]string, 0, len(project.Videos))
	for _, video := range project.Videos {
		ids = append(ids, video.YouTubeID)
	}
	if diff := cmp.Diff([]string{"2u8_Gv_4rFY", "TygWFg4kByU"}, ids); diff != "" {
		t.Fatalf("video ids mismatch (-want +got):\n%s", diff)
	}
	if project.Document != nil {
		t.Fatalf("expected no document, got %+v", project.Document)
	}
}
