package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFeedParsesTabSeparatedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	data := "alice\thello\n\nbob\t\x02bold\x02 text\nno tab here\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	f, err := loadFeed(path)
	if err != nil {
		t.Fatalf("loadFeed: %v", err)
	}
	if len(f.pending) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(f.pending))
	}
	if f.pending[0].Sender != "alice" || f.pending[0].Text != "hello" {
		t.Fatalf("unexpected first message: %+v", f.pending[0])
	}
	if f.pending[1].Text != "\x02bold\x02 text" {
		t.Fatalf("control codes must survive loading, got %q", f.pending[1].Text)
	}
	if f.pending[2].Sender != "log" || f.pending[2].Text != "no tab here" {
		t.Fatalf("untagged line should fall back to the log sender: %+v", f.pending[2])
	}
}

func TestLoadFeedMissingFileErrors(t *testing.T) {
	if _, err := loadFeed(filepath.Join(t.TempDir(), "absent.log")); err == nil {
		t.Fatal("expected an error for a missing log file")
	}
}

func TestLoadFeedEmptyPathUsesSample(t *testing.T) {
	f, err := loadFeed("")
	if err != nil {
		t.Fatalf("loadFeed: %v", err)
	}
	if len(f.pending) == 0 {
		t.Fatal("sample log must not be empty")
	}
}

func TestFeedPrimesThenPaces(t *testing.T) {
	f := &feed{pending: sampleLog()}

	for i := 0; i < feedPrimeSize; i++ {
		if _, ok := f.next(0); !ok {
			t.Fatalf("message %d should be released immediately", i)
		}
	}
	if _, ok := f.next(feedInterval / 2); ok {
		t.Fatal("message released before the interval elapsed")
	}
	if _, ok := f.next(feedInterval); !ok {
		t.Fatal("message withheld after the interval elapsed")
	}
}

func TestFeedDrains(t *testing.T) {
	f := &feed{pending: []feedMessage{{Sender: "a", Text: "x"}}}
	if _, ok := f.next(time.Hour); !ok {
		t.Fatal("expected the only message")
	}
	if _, ok := f.next(time.Hour); ok {
		t.Fatal("drained feed must stop producing")
	}
}

func TestOpenerCommandPrefersConfigured(t *testing.T) {
	name, args := openerCommand("firefox", "https://example.com")
	if name != "firefox" || len(args) != 1 || args[0] != "https://example.com" {
		t.Fatalf("got %s %v", name, args)
	}
}
