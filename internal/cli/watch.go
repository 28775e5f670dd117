package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce batches the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

var catalogExts = []string{".cue", ".yaml", ".yml", ".json"}

// watchCatalog calls onChange after every settled change to the catalog at
// path until ctx is done. For a directory any catalog file inside it
// counts; for a file only that file does.
func watchCatalog(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	dir, only := path, ""
	if !info.IsDir() {
		dir, only = filepath.Dir(path), filepath.Clean(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	relevant := func(event fsnotify.Event) bool {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
			!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
			return false
		}
		if only != "" {
			return filepath.Clean(event.Name) == only
		}
		return slices.Contains(catalogExts, strings.ToLower(filepath.Ext(event.Name)))
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event) {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", dir, err)
		case <-timer.C:
			onChange()
		}
	}
}
