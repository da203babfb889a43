package format

import (
	"encoding/json"
	"io"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// JSONFormatter prints indented JSON. A single listing is the bare array the
// listing server returns; several are an object keyed by section.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonEntry struct {
	Section     media.Section `json:"section"`
	Name        string        `json:"name"`
	Kind        string        `json:"kind"`
	Size        int64         `json:"size"`
	ModTime     time.Time     `json:"modTime"`
	Orientation int           `json:"orientation,omitempty"`
	TakenAt     *time.Time    `json:"takenAt,omitempty"`
}

func encoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

func nonNil(files media.FileList) media.FileList {
	if files == nil {
		return media.FileList{}
	}
	return files
}

func (f *JSONFormatter) FormatListings(listings []Listing, w io.Writer) error {
	if len(listings) == 1 {
		return encoder(w).Encode(nonNil(listings[0].Files))
	}
	bySection := make(map[media.Section]media.FileList, len(listings))
	for _, l := range listings {
		bySection[l.Section] = nonNil(l.Files)
	}
	return encoder(w).Encode(bySection)
}

func (f *JSONFormatter) FormatEntries(entries []media.Entry, w io.Writer) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{
			Section:     e.Section,
			Name:        e.Name,
			Kind:        e.Kind.String(),
			Size:        e.Size,
			ModTime:     e.ModTime,
			Orientation: e.Orientation,
		}
		if !e.TakenAt.IsZero() {
			taken := e.TakenAt
			out[i].TakenAt = &taken
		}
	}
	return encoder(w).Encode(out)
}
