// Package config loads the chat pane's YAML configuration and can watch it
// for live edits.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	RendererPlain = "plain"
	RendererRich  = "rich"
)

type Config struct {
	// HistoryLimit caps the message backlog.
	HistoryLimit int `yaml:"history_limit"`
	// Renderer selects the message renderer: "plain" or "rich".
	Renderer string `yaml:"renderer"`
	// FontPath points at an optional TTF to load instead of the builtin font.
	FontPath string `yaml:"font_path"`
	// LinkCommand is the program clicked links are handed to. Empty picks a
	// platform default at startup.
	LinkCommand string `yaml:"link_command"`
	// Accent names the pane's accent color: ember, forest or amber.
	Accent string `yaml:"accent"`
}

func Default() Config {
	return Config{
		HistoryLimit: 260,
		Renderer:     RendererRich,
		Accent:       "ember",
	}
}

// Load reads the config at path. A missing file is not an error; defaults
// apply. Unknown renderer or accent names fall back to the defaults rather
// than failing, so a typo in the file never takes the pane down.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.HistoryLimit < 1 {
		c.HistoryLimit = Default().HistoryLimit
	}
	switch strings.ToLower(strings.TrimSpace(c.Renderer)) {
	case RendererPlain:
		c.Renderer = RendererPlain
	default:
		c.Renderer = RendererRich
	}
	c.Accent = strings.ToLower(strings.TrimSpace(c.Accent))
	if c.Accent == "" {
		c.Accent = Default().Accent
	}
}
