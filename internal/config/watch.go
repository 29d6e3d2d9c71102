package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it changes on disk and hands the
// result to the frame loop through a small buffered channel. Reloads that
// fail to parse are dropped; the pane keeps its current settings.
type Watcher struct {
	path string
	ch   chan Config
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path's directory (editors tend to replace files
// rather than write them in place, so watching the file itself misses saves).
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		path: path,
		ch:   make(chan Config, 4),
		fsw:  fsw,
		done: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers each successfully reloaded config. The frame loop drains
// it with a non-blocking receive once per frame.
func (w *Watcher) Changes() <-chan Config {
	return w.ch
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				continue
			}
			select {
			case w.ch <- cfg:
			default:
				// Frame loop is behind; drop the stale reload.
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
