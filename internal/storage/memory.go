package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// MemoryStorage keeps the catalog in process memory.
type MemoryStorage struct {
	mu       sync.RWMutex
	sections map[media.Section][]media.Entry
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{sections: make(map[media.Section][]media.Entry)}
}

func (m *MemoryStorage) Replace(_ context.Context, section media.Section, entries []media.Entry) error {
	copied := make([]media.Entry, len(entries))
	copy(copied, entries)
	sort.SliceStable(copied, func(i, j int) bool { return copied[i].Name < copied[j].Name })

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections[section] = copied
	return nil
}

func (m *MemoryStorage) List(_ context.Context, section media.Section) ([]media.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := m.sections[section]
	out := make([]media.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MemoryStorage) Close() error { return nil }
