// Package render turns certificate and photo files into fixed blocks of
// styled terminal rows. Renderers are pure functions of the file bytes and
// the available width, so callers can cache the result per item.
package render

import (
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Terminal cell geometry in source pixels. A half-block cell shows two
// vertically stacked pixels, which keeps image pixels square.
const (
	CellWidth  = 8
	CellHeight = 16
)

// MaxPDFScale caps the page scale so tiny pages do not blow up.
const MaxPDFScale = 2.0

// Surface is a rendered item.
type Surface struct {
	Kind media.Kind
	// Lines holds exactly Height rows, each Width cells wide.
	Lines  []string
	Width  int
	Height int
	// SourceWidth and SourceHeight are the dimensions of the source in its
	// own units (pixels for images, points for PDF pages).
	SourceWidth  float64
	SourceHeight float64
	// Scale is the factor applied to the source.
	Scale float64
}

func (s *Surface) String() string {
	return strings.Join(s.Lines, "\n")
}

// Func renders data into a surface at most width columns wide.
type Func func(data []byte, width int) (*Surface, error)

// ForCertificate returns the renderer for a certificate file.
func ForCertificate(name string) Func {
	if media.CertificateRoute(name) == media.PDF {
		return PDF
	}
	return Image
}

func renderError(op string, err error) error {
	return errors.New(errors.KindRender, op, err)
}
