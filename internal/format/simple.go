package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// SimpleFormatter prints bare names. Several listings get a "section (n)"
// header each and a blank line between them.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new simple formatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

func (f *SimpleFormatter) FormatListings(listings []Listing, w io.Writer) error {
	for i, l := range listings {
		if len(listings) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s (%d)\n", l.Section, len(l.Files)); err != nil {
				return err
			}
		}
		for _, name := range l.Files {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *SimpleFormatter) FormatEntries(entries []media.Entry, w io.Writer) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s/%s\n", e.Section, e.Name); err != nil {
			return err
		}
	}
	return nil
}
