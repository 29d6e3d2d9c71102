// Package chatpane renders an IRC-style chat backlog inside a host raylib
// window. The host owns the frame loop and calls Update and Draw once per
// frame; the pane owns scrolling, input, click-to-link handling and the
// renderer variants.
package chatpane

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/chatpane/internal/command"
	"github.com/appengine-ltd/chatpane/internal/config"
	"github.com/appengine-ltd/chatpane/internal/history"
	"github.com/appengine-ltd/chatpane/internal/ircmark"
)

// LinkSink receives the URL of a clicked link. The pane never opens anything
// itself; dispatching belongs to the host.
type LinkSink func(url string)

// offsetHitTester is implemented by renderers that can map a click back to a
// markup offset. The plain renderer deliberately does not.
type offsetHitTester interface {
	OffsetAt(pos rl.Vector2) (markup string, offset int, ok bool)
}

const (
	inputStripH   float32 = 64
	localSender           = "you"
	noticeSender          = "*"
	maxInputChars         = 180
)

type Pane struct {
	Title string

	buf      *history.Buffer
	parser   *command.Parser
	renderer Renderer
	kind     string
	measure  MeasureFunc

	lastArea rl.Rectangle
	scroll   int // messages scrolled back from the newest
	input    string
	status   string
	links    LinkSink
	quit     bool
}

func New(cfg config.Config, links LinkSink) *Pane {
	p := &Pane{
		Title:   "#chat",
		buf:     history.NewBuffer(cfg.HistoryLimit),
		parser:  command.New(),
		measure: MeasureText,
		links:   links,
	}
	SetAccent(cfg.Accent)
	p.setRenderer(cfg.Renderer)
	return p
}

// ApplyConfig folds a (re)loaded config into the running pane.
func (p *Pane) ApplyConfig(cfg config.Config) {
	p.buf.SetCapacity(cfg.HistoryLimit)
	SetAccent(cfg.Accent)
	if cfg.Renderer != p.kind {
		p.setRenderer(cfg.Renderer)
	}
}

func (p *Pane) setRenderer(kind string) {
	if kind != RendererKindPlain {
		kind = RendererKindRich
	}
	p.kind = kind
	p.renderer = NewRenderer(kind, p.measure)
	p.renderer.OnResize(p.messageArea(p.lastArea))
}

// Append adds a received message. While the user is scrolled back, the view
// stays anchored instead of jumping to the newest line.
func (p *Pane) Append(sender, raw string) {
	if m := p.buf.Append(sender, raw); m != nil && p.scroll > 0 {
		p.scroll++
	}
}

// Notice adds a local status line to the backlog.
func (p *Pane) Notice(text string) {
	p.buf.Append(noticeSender, text)
}

func (p *Pane) QuitRequested() bool {
	return p.quit
}

func (p *Pane) messageArea(rect rl.Rectangle) rl.Rectangle {
	h := rect.Height - inputStripH
	if h < 40 {
		h = 40
	}
	return rl.NewRectangle(rect.X, rect.Y, rect.Width, h)
}

// Update consumes this frame's input. rect must match the rect passed to
// Draw in the same frame.
func (p *Pane) Update(rect rl.Rectangle) {
	if rect != p.lastArea {
		p.renderer.OnResize(p.messageArea(rect))
		p.lastArea = rect
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		p.scroll += int(wheel)
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		p.scroll += 5
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		p.scroll -= 5
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		p.scroll = 0
	}
	if p.buf.Len() > 0 {
		p.scroll = clampInt(p.scroll, 0, p.buf.Len()-1)
	} else {
		p.scroll = 0
	}

	captureTextInput(&p.input, maxInputChars)
	if rl.IsKeyPressed(rl.KeyEnter) {
		p.submitInput()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if rl.CheckCollisionPointRec(pos, p.messageArea(rect)) {
			p.handleClick(pos)
		}
	}
}

// handleClick maps a click to a markup offset, extracts the surrounding
// word and dispatches it when it looks like a link.
func (p *Pane) handleClick(pos rl.Vector2) {
	ht, ok := p.renderer.(offsetHitTester)
	if !ok {
		return
	}
	markup, offset, ok := ht.OffsetAt(pos)
	if !ok {
		return
	}
	word := ircmark.WordAt(markup, offset)
	p.dispatchLink(word)
}

func (p *Pane) dispatchLink(word string) {
	if !strings.HasPrefix(word, "http:") && !strings.HasPrefix(word, "https:") {
		return
	}
	p.status = "Opening " + word
	if p.links != nil {
		p.links(word)
	}
}

func (p *Pane) submitInput() {
	line := p.input
	p.input = ""
	intent := p.parser.Parse(line)
	if intent.Clarify != nil {
		p.status = intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			p.status += " " + strings.Join(intent.Clarify.Options, " or ")
		}
		return
	}
	p.status = ""

	switch intent.Kind {
	case command.Say:
		p.Append(localSender, intent.Text)
		p.scroll = 0
	case command.Help:
		for _, d := range p.parser.Commands() {
			p.Notice(d.Usage)
		}
		p.scroll = 0
	case command.Clear:
		p.buf.Clear()
		p.scroll = 0
	case command.Theme:
		if SetAccent(intent.Args[0]) {
			p.status = "Theme accent: " + intent.Args[0]
		} else {
			p.status = "Unknown accent. Try: " + strings.Join(AccentNames(), ", ")
		}
	case command.Renderer:
		kind := strings.ToLower(intent.Args[0])
		if kind != RendererKindPlain && kind != RendererKindRich {
			p.status = "Renderer must be plain or rich"
			return
		}
		p.setRenderer(kind)
		p.status = "Renderer: " + kind
	case command.Open:
		p.dispatchLink(intent.Args[0])
	case command.Quit:
		p.quit = true
	}
}

// Draw renders the pane into rect. Must be called between BeginDrawing and
// EndDrawing.
func (p *Pane) Draw(rect rl.Rectangle) {
	drawPanel(rect, p.Title)

	msgArea := p.messageArea(rect)
	end := p.buf.Len() - p.scroll
	msgs := p.buf.All()[:clampInt(end, 0, p.buf.Len())]
	rows := make([]Row, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, Row{Sender: m.Sender, Markup: m.Markup()})
	}
	p.renderer.Render(msgArea, rows)

	if p.scroll > 0 {
		drawText("(scrolled)", int32(rect.X+rect.Width)-110, int32(rect.Y)+10, hintFontSize, paneTheme.Warning)
	}

	inputY := int32(rect.Y + rect.Height - inputStripH)
	rl.DrawLineEx(
		rl.Vector2{X: rect.X + 8, Y: float32(inputY)},
		rl.Vector2{X: rect.X + rect.Width - 8, Y: float32(inputY)},
		1.5, paneTheme.Divider,
	)
	prompt := "> " + p.input
	if p.input != "" {
		prompt += "_"
	}
	drawText(prompt, int32(rect.X)+12, inputY+10, inputFontSize, paneTheme.TextPrimary)
	if strings.TrimSpace(p.status) != "" {
		drawText(p.status, int32(rect.X)+12, inputY+36, hintFontSize, paneTheme.Warning)
	} else {
		drawText("/help for commands, click a link to open it", int32(rect.X)+12, inputY+36, hintFontSize, paneTheme.TextMuted)
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
