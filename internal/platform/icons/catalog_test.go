package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreUniqueAndNamed(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}

	seen := make(map[ID]struct{})
	for _, def := range defs {
		if def.ID == "" {
			t.Errorf("unexpected empty icon id in catalog")
		}
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon id in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", def.ID)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Fatal("Catalog() exposed internal slice")
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   ID
		wantOK bool
	}{
		{raw: "github", want: IDGitHub, wantOK: true},
		{raw: " Email ", want: IDEmail, wantOK: true},
		{raw: "external-link", want: IDExternalLink, wantOK: true},
		{raw: "twitter", wantOK: false},
		{raw: "", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseID(tc.raw)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseID(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}
