package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "fr-FR,fr;q=0.9", "en-GB", "!!invalid"} {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		if got := ResolveTag(req); got != language.English {
			t.Errorf("ResolveTag(%q) = %v, want %v", header, got, language.English)
		}
	}
	if got := ResolveTag(nil); got != Default() {
		t.Errorf("ResolveTag(nil) = %v, want default", got)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	printer := Printer(language.English)
	if got := printer.Sprintf("project.gallery"); got != "Project Gallery" {
		t.Fatalf("Sprintf(project.gallery) = %q", got)
	}
	if got := printer.Sprintf("projects.more_tech", 3); got != "+3" {
		t.Fatalf("Sprintf(projects.more_tech) = %q", got)
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := Supported()
	tags[0] = language.French
	if Default() != language.English {
		t.Fatal("Supported() exposed internal slice")
	}
}
