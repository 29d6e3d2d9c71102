package chatpane

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Row is one message as the renderers see it: the sender plus the transcoded
// markup cached on the message.
type Row struct {
	Sender string
	Markup string
}

// Renderer is the capability set a message-area renderer implements. The
// pane only ever talks to this interface so the variants stay swappable.
type Renderer interface {
	// MeasureSenderWidth returns the pixel width reserved for a sender name.
	MeasureSenderWidth(sender string) int32
	// Render draws the rows bottom-anchored into area. Rows that do not fit
	// are dropped from the top.
	Render(area rl.Rectangle, rows []Row)
	// OnResize invalidates any layout tied to the previous area.
	OnResize(area rl.Rectangle)
}

const (
	RendererKindPlain = "plain"
	RendererKindRich  = "rich"
)

// NewRenderer picks a renderer variant. The set is closed: anything that is
// not the plain multiline renderer gets the rich one.
func NewRenderer(kind string, measure MeasureFunc) Renderer {
	if measure == nil {
		measure = MeasureText
	}
	if kind == RendererKindPlain {
		return &plainRenderer{measure: measure}
	}
	return &richRenderer{measure: measure}
}

const (
	rowPadX     int32 = 12
	rowPadY     int32 = 34
	senderGap   int32 = 10
	maxSenderPx int32 = 240
)

// ---------------------------------------------------------------------------
// Rich renderer
// ---------------------------------------------------------------------------

type renderedRow struct {
	markup string
	lines  []visualLine
	textX  int32
	yTop   int32
}

type richRenderer struct {
	measure MeasureFunc
	area    rl.Rectangle
	lineH   int32
	rows    []renderedRow
}

func (r *richRenderer) MeasureSenderWidth(sender string) int32 {
	w := r.measure("<"+sender+">", senderFontSize)
	if w > maxSenderPx {
		w = maxSenderPx
	}
	return w
}

func (r *richRenderer) OnResize(area rl.Rectangle) {
	r.area = area
	r.rows = nil
}

func (r *richRenderer) Render(area rl.Rectangle, rows []Row) {
	r.area = area
	r.lineH = textLineHeight(bodyFontSize)
	r.rows = r.rows[:0]

	senderW := int32(0)
	for _, row := range rows {
		if w := r.MeasureSenderWidth(row.Sender); w > senderW {
			senderW = w
		}
	}
	textX := int32(area.X) + rowPadX + senderW + senderGap
	wrapW := int32(area.X+area.Width) - rowPadX - textX
	if wrapW < 40 {
		wrapW = 40
	}

	// Lay out every candidate row, then keep the tail that fits.
	type laid struct {
		row   Row
		lines []visualLine
	}
	all := make([]laid, 0, len(rows))
	total := int32(0)
	for _, row := range rows {
		lines := layoutSpans(parseSpans(row.Markup), bodyFontSize, wrapW, r.measure)
		all = append(all, laid{row: row, lines: lines})
		total += int32(len(lines)) * r.lineH
	}
	maxH := int32(area.Height) - rowPadY - 10
	first := 0
	for first < len(all) && total > maxH {
		total -= int32(len(all[first].lines)) * r.lineH
		first++
	}

	y := int32(area.Y) + rowPadY
	for _, l := range all[first:] {
		drawText("<"+l.row.Sender+">", int32(area.X)+rowPadX, y, senderFontSize, paneTheme.Accent)
		for li, line := range l.lines {
			for _, f := range line.frags {
				clr := paneTheme.TextPrimary
				if f.color != "" {
					clr = ircColor(f.color)
				}
				drawStyledText(f.text, textX+f.x, y+int32(li)*r.lineH, bodyFontSize, clr, f.bold, f.italic)
			}
		}
		r.rows = append(r.rows, renderedRow{
			markup: l.row.Markup,
			lines:  l.lines,
			textX:  textX,
			yTop:   y,
		})
		y += int32(len(l.lines)) * r.lineH
	}
}

// OffsetAt maps a click position to the markup string of the clicked row and
// a byte offset within it, based on the layout of the frame just drawn.
func (r *richRenderer) OffsetAt(pos rl.Vector2) (markup string, offset int, ok bool) {
	x := int32(pos.X)
	y := int32(pos.Y)
	for _, row := range r.rows {
		height := int32(len(row.lines)) * r.lineH
		if y < row.yTop || y >= row.yTop+height {
			continue
		}
		li := int((y - row.yTop) / r.lineH)
		if li < 0 || li >= len(row.lines) {
			return "", 0, false
		}
		off, hit := hitFragment(row.lines[li], x-row.textX, bodyFontSize, r.measure)
		if !hit {
			return "", 0, false
		}
		return row.markup, off, true
	}
	return "", 0, false
}

// ---------------------------------------------------------------------------
// Plain multiline renderer
// ---------------------------------------------------------------------------

// plainRenderer draws the stripped message text in a single color. It keeps
// no layout, so clicks are not mapped and links are unavailable in this
// variant.
type plainRenderer struct {
	measure MeasureFunc
	area    rl.Rectangle
}

func (r *plainRenderer) MeasureSenderWidth(sender string) int32 {
	w := r.measure("<"+sender+">", senderFontSize)
	if w > maxSenderPx {
		w = maxSenderPx
	}
	return w
}

func (r *plainRenderer) OnResize(area rl.Rectangle) {
	r.area = area
}

func (r *plainRenderer) Render(area rl.Rectangle, rows []Row) {
	r.area = area
	lineH := textLineHeight(bodyFontSize)
	wrapW := int32(area.Width) - rowPadX*2
	if wrapW < 40 {
		wrapW = 40
	}

	type laid struct {
		lines []string
	}
	all := make([]laid, 0, len(rows))
	total := int32(0)
	for _, row := range rows {
		text := "<" + row.Sender + "> " + stripMarkup(row.Markup)
		lines := wrapPlainText(text, bodyFontSize, wrapW, r.measure)
		all = append(all, laid{lines: lines})
		total += int32(len(lines)) * lineH
	}
	maxH := int32(area.Height) - rowPadY - 10
	first := 0
	for first < len(all) && total > maxH {
		total -= int32(len(all[first].lines)) * lineH
		first++
	}

	y := int32(area.Y) + rowPadY
	for _, l := range all[first:] {
		for _, line := range l.lines {
			drawText(line, int32(area.X)+rowPadX, y, bodyFontSize, paneTheme.TextPrimary)
			y += lineH
		}
	}
}

// wrapPlainText is a plain word wrap for unstyled text.
func wrapPlainText(text string, size, maxWidth int32, measure MeasureFunc) []string {
	lines := layoutSpans([]Span{{Text: text}}, size, maxWidth, measure)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b []byte
		for i, f := range line.frags {
			if i > 0 {
				b = append(b, ' ')
			}
			b = append(b, f.text...)
		}
		out = append(out, string(b))
	}
	return out
}
