package format

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/dustin/go-humanize"
)

// TakenLayout is the time layout of the TAKEN column.
const TakenLayout = "2006-01-02 15:04"

// TableFormatter prints aligned columns with a header row.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (f *TableFormatter) FormatListings(listings []Listing, w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "SECTION\tNAME\tKIND")
	for _, l := range listings {
		for _, name := range l.Files {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Section, name, media.Classify(name))
		}
	}
	return tw.Flush()
}

func (f *TableFormatter) FormatEntries(entries []media.Entry, w io.Writer) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "SECTION\tNAME\tKIND\tSIZE\tMODIFIED\tTAKEN")
	for _, e := range entries {
		taken := "-"
		if !e.TakenAt.IsZero() {
			taken = e.TakenAt.Format(TakenLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Section, e.Name, e.Kind, humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime), taken)
	}
	return tw.Flush()
}
