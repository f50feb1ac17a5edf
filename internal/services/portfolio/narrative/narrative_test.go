package narrative

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFragmentsClassifiesLines(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Built the whole thing.",
		"",
		"**Custom PCB Design:**",
		"- Lead technical development of X",
		"   -   indented bullet  ",
		"   ",
		"Plain - with hyphen",
	}, "\n")

	want := []Fragment{
		{Kind: KindParagraph, Text: "Built the whole thing."},
		{Kind: KindSpacer},
		{Kind: KindHeading, Text: "Custom PCB Design:"},
		{Kind: KindBullet, Text: "Lead technical development of X"},
		{Kind: KindBullet, Text: "indented bullet"},
		{Kind: KindSpacer},
		{Kind: KindParagraph, Text: "Plain - with hyphen"},
	}
	if diff := cmp.Diff(want, Fragments(text)); diff != "" {
		t.Fatalf("Fragments() mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingMarkerEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want string
	}{
		{line: "**Custom PCB Design:**", want: "Custom PCB Design:"},
		{line: "Intro **Bold** trailing text", want: "Bold"},
		{line: "**Unclosed heading", want: "Unclosed heading"},
		{line: "**a** b **c**", want: "a"},
		{line: "- **bullet with bold**", want: "bullet with bold"},
		{line: "****", want: ""},
	}
	for _, tc := range tests {
		got := Fragments(tc.line)
		want := []Fragment{{Kind: KindHeading, Text: tc.want}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Fragments(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
	}
}

func TestFragmentCountMatchesLineCount(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"one",
		"one\ntwo",
		"\n\n\n",
		"a\r\nb\r\n",
		"**h**\n- b\n\np",
	}
	for _, in := range inputs {
		lines := strings.Count(in, "\n") + 1
		if got := len(Fragments(in)); got != lines {
			t.Errorf("len(Fragments(%q)) = %d, want %d", in, got, lines)
		}
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "Intro\n\n**Heading**\n- one\n- two\nOutro"
	first := Fragments(text)
	second := Fragments(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Fragments() not deterministic (-first +second):\n%s", diff)
	}

	seq := Format(text)
	var a, b []Fragment
	for f := range seq {
		a = append(a, f)
	}
	for f := range seq {
		b = append(b, f)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("ranging Format() twice differs (-first +second):\n%s", diff)
	}
}

func TestFormatStopsEarly(t *testing.T) {
	t.Parallel()

	count := 0
	for range Format("a\nb\nc\nd") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestFormatStripsCarriageReturns(t *testing.T) {
	t.Parallel()

	want := []Fragment{
		{Kind: KindHeading, Text: "Heading"},
		{Kind: KindParagraph, Text: "Body"},
		{Kind: KindSpacer},
	}
	if diff := cmp.Diff(want, Fragments("**Heading**\r\nBody\r\n")); diff != "" {
		t.Fatalf("Fragments() mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		KindSpacer:    "spacer",
		KindHeading:   "heading",
		KindBullet:    "bullet",
		KindParagraph: "paragraph",
		Kind(42):      "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
