package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"vcnnet/internal/logging"
)

// reloadSettle coalesces the burst of events editors emit on save.
const reloadSettle = 150 * time.Millisecond

// Watch reloads the config file whenever it changes and reports the result
// to onChange. The parent directory is watched so atomic-rename saves are seen.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Config("Watching %s for changes", path)

	target := filepath.Clean(path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadSettle)

		case <-pending:
			pending = nil
			cfg, err := Load(path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				logging.ConfigWarn("Config reload failed: %v", err)
				onChange(nil, err)
				continue
			}
			logging.Config("Config reloaded from %s", path)
			onChange(cfg, nil)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.ConfigError("Config watcher error: %v", err)
		}
	}
}
