// Package narrative splits long-form project text into display fragments.
//
// Each line becomes exactly one fragment: a blank line is a spacer, a line
// with a bold marker is a heading, a line starting with a hyphen is a
// bullet, and anything else is a paragraph. Formatting never fails; stray
// markers lose text instead of producing errors.
package narrative

import (
	"iter"
	"strings"
)

// Kind classifies a fragment.
type Kind int

const (
	KindSpacer Kind = iota
	KindHeading
	KindBullet
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindSpacer:
		return "spacer"
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

const (
	boldMarker   = "**"
	bulletMarker = "-"
)

// Fragment is one formatted line. Text is empty for spacers.
type Fragment struct {
	Kind Kind
	Text string
}

// Format yields one fragment per line of text, in order. The sequence is
// recomputed from text each time it is ranged over.
func Format(text string) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(classify(strings.TrimSuffix(line, "\r"))) {
				return
			}
		}
	}
}

// Fragments collects Format into a slice.
func Fragments(text string) []Fragment {
	fragments := make([]Fragment, 0, strings.Count(text, "\n")+1)
	for fragment := range Format(text) {
		fragments = append(fragments, fragment)
	}
	return fragments
}

func classify(line string) Fragment {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Fragment{Kind: KindSpacer}
	case strings.Contains(line, boldMarker):
		return Fragment{Kind: KindHeading, Text: headingText(line)}
	case strings.HasPrefix(trimmed, bulletMarker):
		return Fragment{Kind: KindBullet, Text: strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker))}
	default:
		return Fragment{Kind: KindParagraph, Text: line}
	}
}

// headingText returns the text between the first and second bold markers,
// or everything after the first marker when there is no second one.
func headingText(line string) string {
	_, after, _ := strings.Cut(line, boldMarker)
	heading, _, _ := strings.Cut(after, boldMarker)
	return heading
}
