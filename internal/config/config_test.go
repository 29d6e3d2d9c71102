package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v want defaults", cfg)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpane.yaml")
	body := "history_limit: 50\nrenderer: PLAIN\naccent: Forest\nfont_path: assets/fonts/x.ttf\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HistoryLimit != 50 {
		t.Fatalf("HistoryLimit=%d want 50", cfg.HistoryLimit)
	}
	if cfg.Renderer != RendererPlain {
		t.Fatalf("Renderer=%q want plain", cfg.Renderer)
	}
	if cfg.Accent != "forest" {
		t.Fatalf("Accent=%q want forest", cfg.Accent)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpane.yaml")
	body := "history_limit: -3\nrenderer: holographic\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HistoryLimit != Default().HistoryLimit {
		t.Fatalf("HistoryLimit=%d want default", cfg.HistoryLimit)
	}
	if cfg.Renderer != RendererRich {
		t.Fatalf("Renderer=%q want rich fallback", cfg.Renderer)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpane.yaml")
	if err := os.WriteFile(path, []byte("history_limit: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWatchDeliversReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chatpane.yaml")
	if err := os.WriteFile(path, []byte("history_limit: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("history_limit: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes():
		if cfg.HistoryLimit != 99 {
			t.Fatalf("HistoryLimit=%d want 99", cfg.HistoryLimit)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload delivered")
	}
}
