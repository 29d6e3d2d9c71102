//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		logPath     string
		channel     string
		verbose     bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "chatpane.yaml", "path to the config file")
	flag.StringVar(&logPath, "log", "", "replay a sender\\ttext message log (default: built-in sample)")
	flag.StringVar(&channel, "channel", "", "channel name shown in the pane title")
	flag.BoolVar(&verbose, "verbose", false, "log config reloads and link dispatches")
	flag.Parse()

	if showVersion {
		fmt.Printf("Chatpane %s (%s) %s\n", version, commit, date)
		return
	}

	_, _, _, _ = configPath, logPath, channel, verbose
	fmt.Fprintln(os.Stderr, "Chatpane requires the windowed build (cgo/raylib enabled).")
	os.Exit(1)
}
