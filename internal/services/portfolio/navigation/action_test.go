package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		loc  Location
		want Action
	}{
		{
			name: "fragment scrolls in page",
			href: "#skills",
			loc:  Location{Path: "/about"},
			want: Action{CloseMenu: true, PreventDefault: true, ScrollTo: "skills"},
		},
		{
			name: "compound root at root scrolls",
			href: "/#contact",
			loc:  Location{Path: "/"},
			want: Action{CloseMenu: true, PreventDefault: true, ScrollTo: "contact"},
		},
		{
			name: "compound root elsewhere navigates then scrolls",
			href: "/#contact",
			loc:  Location{Path: "/projects"},
			want: Action{CloseMenu: true, PreventDefault: true, Navigate: "/", ScrollTo: "contact", AfterMount: true},
		},
		{
			name: "compound non-root follows link",
			href: "/about#photos",
			loc:  Location{Path: "/projects"},
			want: Action{CloseMenu: true, Navigate: "/about#photos"},
		},
		{
			name: "plain follows link",
			href: "/projects",
			loc:  Location{Path: "/"},
			want: Action{CloseMenu: true, Navigate: "/projects"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.want, Resolve(Parse(tc.href), tc.loc)); diff != "" {
				t.Fatalf("Resolve(%q) mismatch (-want +got):\n%s", tc.href, diff)
			}
		})
	}
}

func TestResolveAlwaysClosesMenu(t *testing.T) {
	t.Parallel()

	hrefs := []string{"#a", "/#a", "/x#a", "/x", "", "#", "/"}
	locs := []Location{{Path: "/"}, {Path: "/projects"}, {Path: "/", Fragment: "a"}}
	for _, href := range hrefs {
		for _, loc := range locs {
			if !Resolve(Parse(href), loc).CloseMenu {
				t.Errorf("Resolve(%q, %v) left menu open", href, loc)
			}
		}
	}
}
