package chatpane

// fragment is one word of one span placed on a visual line. start is the
// byte offset of text inside the row's markup string.
type fragment struct {
	text   string
	start  int
	bold   bool
	italic bool
	color  string
	x      int32
	width  int32
}

type visualLine struct {
	frags []fragment
}

// layoutSpans word-wraps styled spans into visual lines no wider than
// maxWidth. Every word keeps its markup offset so clicks can be mapped back.
// Newlines inside the text force a break; other whitespace collapses to a
// single space.
func layoutSpans(spans []Span, size, maxWidth int32, measure MeasureFunc) []visualLine {
	if maxWidth < 1 {
		maxWidth = 1
	}
	spaceW := measure(" ", size)

	lines := []visualLine{{}}
	var curX int32

	newline := func() {
		lines = append(lines, visualLine{})
		curX = 0
	}

	place := func(f fragment) {
		x := curX
		if curX > 0 {
			x += spaceW
		}
		if curX > 0 && x+f.width > maxWidth {
			newline()
			x = 0
		}
		f.x = x
		cur := &lines[len(lines)-1]
		cur.frags = append(cur.frags, f)
		curX = x + f.width
	}

	for _, s := range spans {
		start := -1
		for i := 0; i <= len(s.Text); i++ {
			var brk, isSpace bool
			if i == len(s.Text) {
				brk = true
			} else {
				// Only ASCII whitespace separates words; checking raw bytes
				// against unicode classes would split multi-byte runes.
				c := s.Text[i]
				isSpace = c == ' ' || c == '\n' || c == '\r'
				brk = isSpace
			}
			if !brk {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				word := s.Text[start:i]
				place(fragment{
					text:   word,
					start:  s.Start + start,
					bold:   s.Bold,
					italic: s.Italic,
					color:  s.Color,
					width:  measure(word, size),
				})
				start = -1
			}
			if isSpace && s.Text[i] == '\n' {
				newline()
			}
		}
	}
	return lines
}

// hitFragment finds the fragment containing x on a line and the byte offset
// of the clicked character within the row markup. Clicks in the gaps between
// words miss.
func hitFragment(line visualLine, x int32, size int32, measure MeasureFunc) (offset int, ok bool) {
	for _, f := range line.frags {
		if x < f.x || x >= f.x+f.width {
			continue
		}
		rel := x - f.x
		for i := 1; i <= len(f.text); i++ {
			if measure(f.text[:i], size) > rel {
				return f.start + i - 1, true
			}
		}
		return f.start + len(f.text) - 1, true
	}
	return 0, false
}
