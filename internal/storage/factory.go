package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/storage/sqlite"
)

const (
	// BackendMemory keeps the catalog in memory; it is rebuilt on every start.
	BackendMemory = "memory"
	// BackendSQLite persists the catalog between runs.
	BackendSQLite = "sqlite"

	catalogDBFileName = "catalog.db"
)

var _ Storage = (*sqlite.SQLiteStorage)(nil)
var _ Storage = (*MemoryStorage)(nil)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Storage, error) {
	backend := config.Get("catalog_backend", BackendMemory)
	return NewForBackend(backend, config.Get("state_dir", ""))
}

// NewForBackend creates a storage backend for the provided backend name. The
// sqlite database lives in stateDir.
func NewForBackend(backend, stateDir string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		return NewMemoryStorage(), nil
	case BackendSQLite:
		if stateDir == "" {
			colors.Warning("no state directory for sqlite catalog, falling back to memory")
			return NewMemoryStorage(), nil
		}
		dbPath := filepath.Join(stateDir, catalogDBFileName)
		s, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite catalog, falling back to memory: %v", err))
			return NewMemoryStorage(), nil
		}
		return s, nil
	default:
		colors.Warning(fmt.Sprintf("unknown catalog backend '%s', falling back to memory", backend))
		return NewMemoryStorage(), nil
	}
}
