package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// feedMessage is one scripted backlog line: a sender and the raw text with
// its control codes still in place.
type feedMessage struct {
	Sender string
	Text   string
}

// feed replays a message log into the pane at a readable pace. The first
// batch lands immediately so the window never opens empty.
type feed struct {
	pending  []feedMessage
	released int
}

const (
	feedInterval  = 1500 * time.Millisecond
	feedPrimeSize = 6
)

// loadFeed reads a tab-separated "sender\ttext" log. An empty path falls back
// to the built-in sample; a named path that cannot be read is an error.
func loadFeed(path string) (*feed, error) {
	if path == "" {
		return &feed{pending: sampleLog()}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open message log: %w", err)
	}
	defer f.Close()

	var msgs []feedMessage
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		sender, text, found := strings.Cut(line, "\t")
		if !found {
			sender, text = "log", line
		}
		msgs = append(msgs, feedMessage{Sender: sender, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read message log: %w", err)
	}
	return &feed{pending: msgs}, nil
}

// next returns the message due this frame, if any. The first few messages are
// released without waiting for the interval.
func (f *feed) next(sinceLast time.Duration) (feedMessage, bool) {
	if len(f.pending) == 0 {
		return feedMessage{}, false
	}
	if f.released >= feedPrimeSize && sinceLast < feedInterval {
		return feedMessage{}, false
	}
	msg := f.pending[0]
	f.pending = f.pending[1:]
	f.released++
	return msg, true
}

// sampleLog is the backlog shown when no -log file is given. The lines carry
// real control codes so the rich renderer has something to chew on.
func sampleLog() []feedMessage {
	return []feedMessage{
		{Sender: "river", Text: "morning all"},
		{Sender: "kestrel", Text: "\x02release day\x02 is finally here"},
		{Sender: "river", Text: "changelog is at https://example.com/v2/changelog if anyone wants it"},
		{Sender: "moss", Text: "\x034heads up:\x03 ci is red on the arm runners"},
		{Sender: "kestrel", Text: "\x1dagain?\x1d that's the third time this week"},
		{Sender: "moss", Text: "\x0309fixed\x03 - stale cache, cleared it"},
		{Sender: "river", Text: "\x02\x1dnice\x1d\x02"},
		{Sender: "sable", Text: "anyone tried the \x0311,1new theme\x03 yet"},
		{Sender: "kestrel", Text: "docs for it: https://example.com/themes"},
		{Sender: "moss", Text: "tabs\trender\tas\tspaces, for the record"},
	}
}
