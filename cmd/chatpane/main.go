//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/chatpane/internal/app"
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

	a := app.NewApp(app.AppConfig{
		Version:    version,
		Commit:     commit,
		BuildDate:  date,
		ConfigPath: configPath,
		LogPath:    logPath,
		Channel:    channel,
		Verbose:    verbose,
	})

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
