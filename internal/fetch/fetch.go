// Package fetch loads section listings and files, either from a listing
// server over HTTP or straight from the folders.
package fetch

import (
	"context"
	"io"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Source provides the listing and the bytes of one section.
type Source interface {
	// List returns the section listing. Failures are KindNetwork errors.
	List(ctx context.Context) (media.FileList, error)
	// Open returns the content of a listed file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Section reports which section the source serves.
	Section() media.Section
}
