// Package storage provides the catalog store interface for kioskboard.
package storage

import (
	"context"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Storage keeps the last scan of each section.
type Storage interface {
	// Replace swaps the whole listing of section for entries.
	Replace(ctx context.Context, section media.Section, entries []media.Entry) error
	// List returns the entries of section sorted by name.
	List(ctx context.Context, section media.Section) ([]media.Entry, error)
	Close() error
}
