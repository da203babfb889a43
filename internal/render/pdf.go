package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/ledongthuc/pdf"
)

var pageStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#d4af37"))

// PDF renders the first page of a document as a framed card holding the
// page's text. The scale fits the page to the width, capped at MaxPDFScale;
// the card height follows the page's aspect ratio.
func PDF(data []byte, width int) (surface *Surface, err error) {
	if width < 3 {
		return nil, renderError("render pdf", fmt.Errorf("width %d", width))
	}
	defer func() {
		if r := recover(); r != nil {
			surface, err = nil, renderError("render pdf", fmt.Errorf("malformed document: %v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, renderError("render pdf", err)
	}
	if r.NumPage() < 1 {
		return nil, renderError("render pdf", fmt.Errorf("document has no pages"))
	}
	page := r.Page(1)
	pageW, pageH, err := mediaBox(page.V)
	if err != nil {
		return nil, renderError("render pdf", err)
	}

	scale := math.Min(float64(width*CellWidth)/pageW, MaxPDFScale)
	cols := clamp(int(math.Round(pageW*scale/CellWidth)), 3, width)
	rows := max(int(math.Round(pageH*scale/CellHeight)), 3)

	text, err := page.GetPlainText(nil)
	if err != nil {
		// a page without extractable text still renders as an empty card
		text = ""
	}
	return &Surface{
		Kind:         media.PDF,
		Lines:        card(text, cols, rows),
		Width:        cols,
		Height:       rows,
		SourceWidth:  pageW,
		SourceHeight: pageH,
		Scale:        scale,
	}, nil
}

// mediaBox returns the page size, walking up the page tree when the box is
// inherited.
func mediaBox(v pdf.Value) (w, h float64, err error) {
	for depth := 0; v.Kind() == pdf.Dict && depth < 32; depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			w = math.Abs(box.Index(2).Float64() - box.Index(0).Float64())
			h = math.Abs(box.Index(3).Float64() - box.Index(1).Float64())
			if w == 0 || h == 0 {
				return 0, 0, fmt.Errorf("empty media box")
			}
			return w, h, nil
		}
		v = v.Key("Parent")
	}
	return 0, 0, fmt.Errorf("page has no media box")
}

// card frames text in a cols x rows block.
func card(text string, cols, rows int) []string {
	innerW, innerH := cols-2, rows-2
	body := lipgloss.NewStyle().Width(innerW).Render(normalizeText(text))
	lines := strings.Split(body, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	block := lipgloss.NewStyle().Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
	return strings.Split(pageStyle.Render(block), "\n")
}

func normalizeText(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
