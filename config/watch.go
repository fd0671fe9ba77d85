package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces editor write bursts into one reload
const debounce = 100 * time.Millisecond

// Watch reloads path whenever it changes and passes valid configs to fn
// The parent directory is watched so that atomic rename-on-save is seen
// Invalid reloads are logged and skipped; Watch returns when ctx is done
func Watch(ctx context.Context, path string, fn func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watcher: %v", err)

		case <-timer.C:
			cfg, err := Load(path)
			if err == nil {
				err = ApplyEnv(&cfg, nil)
			}
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				log.Printf("config reload rejected: %v", err)
				continue
			}
			log.Printf("config reloaded from %s", path)
			fn(cfg)
		}
	}
}
