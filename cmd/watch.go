package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// tokenWatcher reloads the write token whenever the config file changes.
type tokenWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(token string)
	logger   log.Logger
}

// newTokenWatcher starts watching path. The directory holding path is watched so
// that a file replaced by rename keeps being followed. Events are not consumed
// until Run is called.
func newTokenWatcher(path string, onChange func(token string), logger log.Logger) (*tokenWatcher, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("watch config file %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config directory %s: %w", filepath.Dir(path), err)
	}
	return &tokenWatcher{
		watcher:  watcher,
		path:     path,
		onChange: onChange,
		logger:   log.WithPrefix(logger, "component", "tokenWatcher"),
	}, nil
}

// Run handles file events until ctx is done. A reload that fails keeps the
// previous token.
func (w *tokenWatcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	level.Info(w.logger).Log("msg", "Watching config file for token changes", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// a rename over the file shows up as Create in its directory
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			token, err := loadFileToken(w.path)
			if err != nil {
				level.Warn(w.logger).Log("msg", "Token reload failed, keeping previous token", "path", w.path, "err", err)
				continue
			}
			w.onChange(token)
			level.Info(w.logger).Log("msg", "Token reloaded", "path", w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			level.Error(w.logger).Log("msg", "Config watcher error", "err", err)
		}
	}
}
