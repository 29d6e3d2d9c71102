package command

type Kind int

const (
	Unknown Kind = iota
	Say
	Help
	Clear
	Theme
	Renderer
	Open
	Quit
)

// Intent is the parsed form of one input line. Say carries plain chat text;
// everything else is a slash command.
type Intent struct {
	Raw        string
	Kind       Kind
	Verb       string
	Args       []string
	Text       string
	Confidence float64
	// Clarify is set when the verb could not be resolved cleanly.
	Clarify *Clarify
}

type Clarify struct {
	Prompt  string
	Options []string
}

type Def struct {
	Canonical string
	Aliases   []string
	Kind      Kind
	MinArgs   int
	MaxArgs   int
	Usage     string
}
