// Package format renders listings and catalog entries for the CLI.
package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Listing is the file names of one section.
type Listing struct {
	Section media.Section
	Files   media.FileList
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatListings writes the names of each listing.
	FormatListings(listings []Listing, w io.Writer) error

	// FormatEntries writes catalog entries with their metadata.
	FormatEntries(entries []media.Entry, w io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one name per line under a section header.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints aligned columns with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints JSON.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) (Formatter, error) {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter(), nil
	case FormatterTypeTable:
		return NewTableFormatter(), nil
	case FormatterTypeJSON:
		return NewJSONFormatter(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want simple, table or json)", formatterType)
}
