package chatpane

import "strings"

// Span is a literal run of markup text under one style. Start is the byte
// offset of Text inside the source markup; the rich renderer keeps it so a
// click inside the drawn run maps back to an offset in the markup string,
// which is what the word extractor operates on.
type Span struct {
	Text   string
	Start  int
	Bold   bool
	Italic bool
	Color  string
}

// parseSpans splits transcoded markup into styled runs. The transcoder only
// ever emits balanced tags, but input that merely looks like a tag must stay
// literal, so anything unrecognized after a '<' is treated as text.
func parseSpans(markup string) []Span {
	var spans []Span
	var bold, italic bool
	var color string

	runStart := 0
	flush := func(end int) {
		if end > runStart {
			spans = append(spans, Span{
				Text:   markup[runStart:end],
				Start:  runStart,
				Bold:   bold,
				Italic: italic,
				Color:  color,
			})
		}
	}

	i := 0
	for i < len(markup) {
		if markup[i] != '<' {
			i++
			continue
		}
		rest := markup[i:]
		switch {
		case strings.HasPrefix(rest, "<b>"):
			flush(i)
			bold = true
			i += len("<b>")
		case strings.HasPrefix(rest, "</b>"):
			flush(i)
			bold = false
			i += len("</b>")
		case strings.HasPrefix(rest, "<i>"):
			flush(i)
			italic = true
			i += len("<i>")
		case strings.HasPrefix(rest, "</i>"):
			flush(i)
			italic = false
			i += len("</i>")
		case strings.HasPrefix(rest, "</color>"):
			flush(i)
			color = ""
			i += len("</color>")
		case strings.HasPrefix(rest, "<color="):
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				i++ // dangling, keep literal
				continue
			}
			flush(i)
			color = rest[len("<color="):end]
			i += end + 1
		default:
			i++ // not a tag we emit, keep literal
			continue
		}
		runStart = i
	}
	flush(len(markup))
	return spans
}

// stripMarkup returns the visible text of transcoded markup, for the plain
// renderer and for copy-style operations.
func stripMarkup(markup string) string {
	spans := parseSpans(markup)
	if len(spans) == 1 && spans[0].Start == 0 && len(spans[0].Text) == len(markup) {
		return markup
	}
	var b strings.Builder
	b.Grow(len(markup))
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
