// Package command parses the chat pane's input line. Anything not starting
// with a slash is plain chat text; slash commands are resolved against a
// small registry with typo tolerance.
package command

import (
	"fmt"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Register(d Def) {
	p.registry.Register(d)
}

func (p *Parser) Commands() []Def {
	return p.registry.Defs()
}

// Parse turns one submitted input line into an Intent. A leading "//" is an
// escape for a literal slash in chat text.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{Raw: raw, Kind: Unknown}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return intent
	}
	if strings.HasPrefix(trimmed, "//") {
		intent.Kind = Say
		intent.Text = trimmed[1:]
		intent.Confidence = 1.0
		return intent
	}
	if !strings.HasPrefix(trimmed, "/") {
		intent.Kind = Say
		intent.Text = trimmed
		intent.Confidence = 1.0
		return intent
	}

	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		intent.Clarify = &Clarify{Prompt: "Empty command. Try /help."}
		return intent
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	best, rest := p.registry.matchVerb(verb)
	if best.def.Canonical == "" || best.score < 0.5 {
		intent.Clarify = &Clarify{Prompt: fmt.Sprintf("Unknown command %q. Try /help.", verb)}
		return intent
	}
	if best.score < 0.7 || (len(rest) > 0 && best.score-rest[0].score < 0.05) {
		options := []string{"/" + best.def.Canonical}
		if len(rest) > 0 && rest[0].score > 0.5 {
			options = append(options, "/"+rest[0].def.Canonical)
		}
		intent.Clarify = &Clarify{Prompt: "Did you mean:", Options: options}
		intent.Confidence = best.score
		return intent
	}

	intent.Kind = best.def.Kind
	intent.Verb = best.def.Canonical
	intent.Args = args
	intent.Confidence = best.score

	if len(args) < best.def.MinArgs {
		intent.Clarify = &Clarify{Prompt: "Usage: " + best.def.Usage}
		return intent
	}
	if best.def.MaxArgs > 0 && len(args) > best.def.MaxArgs {
		intent.Args = args[:best.def.MaxArgs]
	}
	return intent
}
