package chatpane

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appengine-ltd/chatpane/internal/ircmark"
)

func TestParseSpansStyledRuns(t *testing.T) {
	got := parseSpans("<b><i>X</i></b>")
	want := []Span{{Text: "X", Start: 6, Bold: true, Italic: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpansColorRun(t *testing.T) {
	got := parseSpans("<color=red>hi</color> there")
	want := []Span{
		{Text: "hi", Start: 11, Color: "red"},
		{Text: " there", Start: 21},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpansKeepsUnknownTagsLiteral(t *testing.T) {
	in := "<nick> says 1<3"
	got := parseSpans(in)
	want := []Span{{Text: in, Start: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpansRoundTripFromTranscoder(t *testing.T) {
	markup := ircmark.Transcode("\x02bold\x02 plain \x034red\x03 tail")
	got := parseSpans(markup)
	want := []Span{
		{Text: "bold", Start: 3, Bold: true},
		{Text: " plain ", Start: 11},
		{Text: "red", Start: 29, Color: "red"},
		{Text: " tail", Start: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup=%q spans mismatch (-want +got):\n%s", markup, diff)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain text", want: "plain text"},
		{in: "<b>bold</b> and <i>italic</i>", want: "bold and italic"},
		{in: "<color=teal>sea</color>", want: "sea"},
		{in: "a<3 b", want: "a<3 b"},
	}
	for _, tc := range tests {
		if got := stripMarkup(tc.in); got != tc.want {
			t.Fatalf("stripMarkup(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}
