package carousel

import (
	"math"
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Items returns the loaded items in listing order.
func (c *Carousel) Items() []Item { return c.items }

// Display returns the loaded items followed by themselves.
func (c *Carousel) Display() []Item { return media.Double(c.items) }

// ContentHeight is the height of the doubled content in rows.
func (c *Carousel) ContentHeight() float64 {
	var h int
	for _, item := range c.items {
		h += item.Surface.Height + c.cfg.Gap
	}
	return float64(2 * h)
}

// Viewport returns rows lines of the doubled content starting at the current
// offset. Rows past the content are blank.
func (c *Carousel) Viewport(rows int) []string {
	out := make([]string, 0, rows)
	if rows <= 0 || len(c.items) == 0 {
		return out
	}
	skip := int(math.Floor(c.Offset()))
	for _, item := range c.Display() {
		for _, line := range itemLines(item, c.cfg.Gap) {
			if skip > 0 {
				skip--
				continue
			}
			out = append(out, line)
			if len(out) == rows {
				return out
			}
		}
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return out
}

func itemLines(item Item, gap int) []string {
	lines := make([]string, 0, len(item.Surface.Lines)+gap)
	lines = append(lines, item.Surface.Lines...)
	for i := 0; i < gap; i++ {
		lines = append(lines, strings.Repeat(" ", item.Surface.Width))
	}
	return lines
}
