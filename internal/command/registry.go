package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Registry struct {
	defs    []Def
	byAlias map[string]int
}

func DefaultRegistry() *Registry {
	r := &Registry{byAlias: map[string]int{}}
	for _, d := range []Def{
		{Canonical: "help", Aliases: []string{"h", "?"}, Kind: Help, Usage: "/help"},
		{Canonical: "clear", Aliases: []string{"cls"}, Kind: Clear, Usage: "/clear"},
		{Canonical: "theme", Kind: Theme, MinArgs: 1, MaxArgs: 1, Usage: "/theme <accent>"},
		{Canonical: "renderer", Aliases: []string{"render"}, Kind: Renderer, MinArgs: 1, MaxArgs: 1, Usage: "/renderer plain|rich"},
		{Canonical: "open", Aliases: []string{"url"}, Kind: Open, MinArgs: 1, MaxArgs: 1, Usage: "/open <url>"},
		{Canonical: "quit", Aliases: []string{"q", "exit"}, Kind: Quit, Usage: "/quit"},
	} {
		r.Register(d)
	}
	return r
}

func (r *Registry) Register(d Def) {
	idx := len(r.defs)
	r.defs = append(r.defs, d)
	r.byAlias[d.Canonical] = idx
	for _, a := range d.Aliases {
		r.byAlias[a] = idx
	}
}

func (r *Registry) lookup(verb string) (Def, bool) {
	if idx, ok := r.byAlias[verb]; ok {
		return r.defs[idx], true
	}
	return Def{}, false
}

// Defs returns the registered commands sorted by canonical name, for help
// output.
func (r *Registry) Defs() []Def {
	out := append([]Def(nil), r.defs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

type verbMatch struct {
	def   Def
	score float64
}

// matchVerb resolves a typed verb to a command. Exact alias hits win, then
// unambiguous prefixes, then near-misses by edit distance.
func (r *Registry) matchVerb(verb string) (verbMatch, []verbMatch) {
	if def, ok := r.lookup(verb); ok {
		return verbMatch{def: def, score: 1.0}, nil
	}

	results := make([]verbMatch, 0, len(r.defs))
	for _, def := range r.defs {
		score := 0.0
		if len(verb) >= 2 && strings.HasPrefix(def.Canonical, verb) {
			score = 0.9
		} else {
			dist := levenshtein.ComputeDistance(verb, def.Canonical)
			if dist > levenshteinLimit(len(def.Canonical)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, verbMatch{def: def, score: score})
	}
	if len(results) == 0 {
		return verbMatch{}, nil
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].def.Canonical < results[j].def.Canonical
		}
		return results[i].score > results[j].score
	})
	return results[0], results[1:]
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}
