// Command genlog writes a sample chat log for the chatpane demo binary.
// Each line is "sender\ttext" with raw control codes in the text, the
// format the -log flag of cmd/chatpane replays.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

var senders = []string{"river", "kestrel", "moss", "sable", "wren", "alder"}

var phrases = []string{
	"anyone around?",
	"\x02ship it\x02",
	"\x1dallegedly\x1d",
	"build is green again",
	"\x034red alert:\x03 disk is at 91 percent",
	"\x0309all clear\x03 on the staging box",
	"\x0312,1deep dive\x03 notes are up",
	"see https://example.com/wiki/oncall for the rota",
	"logs:\tparsed\tand\tarchived",
	"\x02\x1dboth at once\x1d\x02 works too",
	"that was \x0313fuchsia\x03, not purple",
	"grep for it in https://example.com/search?q=timeout",
}

func main() {
	var (
		out   string
		count int
		seed  int64
	)

	flag.StringVar(&out, "out", "chatpane-demo.log", "output path")
	flag.IntVar(&count, "count", 40, "number of lines to generate")
	flag.Int64Var(&seed, "seed", 1, "rng seed, for reproducible logs")
	flag.Parse()

	if count < 1 {
		fmt.Fprintln(os.Stderr, "error: -count must be at least 1")
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(seed))
	w := bufio.NewWriter(f)
	for i := 0; i < count; i++ {
		sender := senders[rng.Intn(len(senders))]
		text := phrases[rng.Intn(len(phrases))]
		fmt.Fprintf(w, "%s\t%s\n", sender, text)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d lines to %s\n", count, out)
}
