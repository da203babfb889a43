package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of events (a copy writes many times).
const DefaultDebounce = 250 * time.Millisecond

// Watch refreshes a section whenever its folder changes, until ctx is done.
// onChange, when set, is called after each refresh.
func (c *Catalog) Watch(ctx context.Context, debounce time.Duration, onChange func(media.Section)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	for _, section := range media.Sections {
		dir, ok := c.dirs[section]
		if !ok {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		c.logger.Info("watching folder", "section", string(section), "dir", dir)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pending := make(map[media.Section]bool)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) &&
				!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			section, ok := c.sectionOf(event.Name)
			if !ok || c.scanner.Ignored(filepath.Base(event.Name)) {
				continue
			}
			pending[section] = true
			if fire == nil {
				fire = time.After(debounce)
			}
		case <-fire:
			fire = nil
			for section := range pending {
				delete(pending, section)
				if err := c.Refresh(ctx, section); err != nil {
					c.logger.Error("catalog refresh failed", "section", string(section), "error", err)
					continue
				}
				if onChange != nil {
					onChange(section)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("fsnotify watcher error", "error", err)
		}
	}
}
