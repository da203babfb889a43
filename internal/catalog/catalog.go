package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/storage"
)

// Catalog serves section listings from a store kept in sync with the folders.
type Catalog struct {
	scanner *Scanner
	store   storage.Storage
	dirs    map[media.Section]string
	logger  logging.Logger
	// live makes every read rescan the folder; used when watching is not
	// available.
	live atomic.Bool
}

// New returns a catalog over dirs (section to folder).
func New(scanner *Scanner, store storage.Storage, dirs map[media.Section]string, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.Discard()
	}
	cleaned := make(map[media.Section]string, len(dirs))
	for section, dir := range dirs {
		cleaned[section] = filepath.Clean(dir)
	}
	return &Catalog{scanner: scanner, store: store, dirs: cleaned, logger: logger}
}

// Dir returns the folder of section.
func (c *Catalog) Dir(section media.Section) string {
	return c.dirs[section]
}

// EnsureDirs creates missing folders.
func (c *Catalog) EnsureDirs() error {
	for _, section := range media.Sections {
		dir, ok := c.dirs[section]
		if !ok {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s folder: %w", section, err)
		}
	}
	return nil
}

// SetLive toggles rescanning on every read.
func (c *Catalog) SetLive(live bool) { c.live.Store(live) }

// Refresh rescans section and replaces its stored listing.
func (c *Catalog) Refresh(ctx context.Context, section media.Section) error {
	dir, ok := c.dirs[section]
	if !ok {
		return fmt.Errorf("no folder configured for %s", section)
	}
	entries, err := c.scanner.Scan(dir, section)
	if err != nil {
		return err
	}
	if err := c.store.Replace(ctx, section, entries); err != nil {
		return err
	}
	c.logger.Debug("catalog refreshed", "section", string(section), "files", len(entries))
	return nil
}

// RefreshAll rescans every configured section.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	for _, section := range media.Sections {
		if _, ok := c.dirs[section]; !ok {
			continue
		}
		if err := c.Refresh(ctx, section); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the catalogued entries of section.
func (c *Catalog) Entries(ctx context.Context, section media.Section) ([]media.Entry, error) {
	if c.live.Load() {
		if err := c.Refresh(ctx, section); err != nil {
			return nil, err
		}
	}
	return c.store.List(ctx, section)
}

// Names returns the sorted file names of section.
func (c *Catalog) Names(ctx context.Context, section media.Section) (media.FileList, error) {
	entries, err := c.Entries(ctx, section)
	if err != nil {
		return nil, err
	}
	return media.Names(entries), nil
}

// sectionOf returns the section whose folder directly contains path.
func (c *Catalog) sectionOf(path string) (media.Section, bool) {
	parent := filepath.Dir(filepath.Clean(path))
	for section, dir := range c.dirs {
		if dir == parent {
			return section, true
		}
	}
	return "", false
}
