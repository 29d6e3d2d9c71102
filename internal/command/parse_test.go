package command

import "testing"

func TestPlainTextIsSay(t *testing.T) {
	p := New()
	intent := p.Parse("hello there")
	if intent.Kind != Say || intent.Text != "hello there" {
		t.Fatalf("expected Say intent, got %+v", intent)
	}
}

func TestDoubleSlashEscapesLiteralSlash(t *testing.T) {
	p := New()
	intent := p.Parse("//slashed message")
	if intent.Kind != Say {
		t.Fatalf("expected Say intent, got %+v", intent)
	}
	if intent.Text != "/slashed message" {
		t.Fatalf("Text=%q want /slashed message", intent.Text)
	}
}

func TestAliasesResolve(t *testing.T) {
	p := New()
	tests := []struct {
		in   string
		kind Kind
		verb string
	}{
		{in: "/help", kind: Help, verb: "help"},
		{in: "/?", kind: Help, verb: "help"},
		{in: "/cls", kind: Clear, verb: "clear"},
		{in: "/q", kind: Quit, verb: "quit"},
		{in: "/open https://example.com", kind: Open, verb: "open"},
	}
	for _, tc := range tests {
		intent := p.Parse(tc.in)
		if intent.Kind != tc.kind || intent.Verb != tc.verb {
			t.Fatalf("Parse(%q)=%+v want kind=%v verb=%q", tc.in, intent, tc.kind, tc.verb)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) unexpected clarify: %+v", tc.in, intent.Clarify)
		}
	}
}

func TestTypoSuggestsCommand(t *testing.T) {
	p := New()
	intent := p.Parse("/claer")
	if intent.Clarify == nil {
		t.Fatalf("expected a did-you-mean clarify, got %+v", intent)
	}
	if len(intent.Clarify.Options) == 0 || intent.Clarify.Options[0] != "/clear" {
		t.Fatalf("expected /clear suggestion, got %+v", intent.Clarify.Options)
	}
}

func TestPrefixResolvesUnambiguously(t *testing.T) {
	p := New()
	intent := p.Parse("/rend rich")
	if intent.Kind != Renderer || intent.Verb != "renderer" {
		t.Fatalf("expected renderer command, got %+v", intent)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "rich" {
		t.Fatalf("Args=%+v want [rich]", intent.Args)
	}
}

func TestMissingArgumentYieldsUsage(t *testing.T) {
	p := New()
	intent := p.Parse("/open")
	if intent.Clarify == nil || intent.Clarify.Prompt != "Usage: /open <url>" {
		t.Fatalf("expected usage clarify, got %+v", intent.Clarify)
	}
}

func TestExtraArgumentsTruncated(t *testing.T) {
	p := New()
	intent := p.Parse("/theme ember and more words")
	if intent.Kind != Theme {
		t.Fatalf("expected theme command, got %+v", intent)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "ember" {
		t.Fatalf("Args=%+v want [ember]", intent.Args)
	}
}

func TestUnknownCommand(t *testing.T) {
	p := New()
	intent := p.Parse("/zzzzzz")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown with clarify, got %+v", intent)
	}
}
