// Package catalog scans the published folders, keeps the result in a store
// and refreshes it when the folders change.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/gobwas/glob"
)

// Scanner lists the files of a folder that belong to a section.
type Scanner struct {
	ignores []glob.Glob
	// Probe reads EXIF data of photos while scanning.
	Probe bool
}

// NewScanner compiles the ignore patterns (".*", "~$*", "Thumbs.db").
func NewScanner(patterns []string) (*Scanner, error) {
	s := &Scanner{Probe: true}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		s.ignores = append(s.ignores, g)
	}
	return s, nil
}

// Ignored reports whether name matches an ignore pattern.
func (s *Scanner) Ignored(name string) bool {
	for _, g := range s.ignores {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Names returns the sorted names of the files in dir accepted by section. A
// missing folder is an empty listing.
func (s *Scanner) Names(dir string, section media.Section) (media.FileList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return media.FileList{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	names := media.FileList{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || s.Ignored(name) || !section.Accepts(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Scan returns the catalog entries of dir for section.
func (s *Scanner) Scan(dir string, section media.Section) ([]media.Entry, error) {
	names, err := s.Names(dir, section)
	if err != nil {
		return nil, err
	}
	entries := make([]media.Entry, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			// removed between ReadDir and Stat
			continue
		}
		e := media.Entry{
			Section: section,
			Name:    name,
			Kind:    media.Classify(name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if s.Probe && e.Kind == media.Image {
			e.Orientation, e.TakenAt = probeExif(path)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
