// Package app hosts the chat pane in a standalone raylib window. Real hosts
// embed chatpane.Pane in their own frame loop; this one exists so the pane
// can be run and demoed on its own.
package app

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/chatpane/internal/chatpane"
	"github.com/appengine-ltd/chatpane/internal/config"
)

type AppConfig struct {
	Version    string
	Commit     string
	BuildDate  string
	ConfigPath string
	LogPath    string
	Channel    string
	Verbose    bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	cfg, err := config.Load(a.cfg.ConfigPath)
	if err != nil {
		return err
	}

	feed, err := loadFeed(a.cfg.LogPath)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(980, 640, "chatpane")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	chatpane.InitTypography(cfg.FontPath)
	defer chatpane.ShutdownTypography()

	pane := chatpane.New(cfg, linkOpener(cfg.LinkCommand, a.cfg.Verbose))
	if a.cfg.Channel != "" {
		pane.Title = a.cfg.Channel
	}
	pane.Notice("chatpane " + a.cfg.Version)

	var watcher *config.Watcher
	if a.cfg.ConfigPath != "" {
		watcher, err = config.Watch(a.cfg.ConfigPath)
		if err != nil {
			// Live reload is a convenience; run without it.
			if a.cfg.Verbose {
				log.Printf("config watch disabled: %v", err)
			}
		} else {
			defer watcher.Close()
		}
	}

	lastFeed := time.Now()
	for !rl.WindowShouldClose() && !pane.QuitRequested() {
		if watcher != nil {
			select {
			case next := <-watcher.Changes():
				pane.ApplyConfig(next)
				if a.cfg.Verbose {
					log.Printf("config reloaded from %s", a.cfg.ConfigPath)
				}
			default:
			}
		}

		if msg, ok := feed.next(time.Since(lastFeed)); ok {
			pane.Append(msg.Sender, msg.Text)
			lastFeed = time.Now()
		}

		w := float32(rl.GetScreenWidth())
		h := float32(rl.GetScreenHeight())
		rect := rl.NewRectangle(16, 16, w-32, h-32)

		pane.Update(rect)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(0x14, 0x1A, 0x1F, 255))
		pane.Draw(rect)
		rl.EndDrawing()
	}
	return nil
}
