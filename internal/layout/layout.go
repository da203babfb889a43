// Package layout implements the three resizable dashboard columns.
//
// Widths are proportional units summing to Total. Two fixed-width resizers
// sit between the panes. A drag adjusts the two panes next to the resizer
// inversely; an adjustment that would shrink either below the minimum is
// dropped as a whole.
package layout

import (
	"fmt"
	"math"
	"sort"
)

const (
	// Total is the sum of the pane widths.
	Total = 100.0
	// Panes is the number of columns.
	Panes = 3
	// ResizerWidth is the width of a resizer handle in terminal columns.
	ResizerWidth = 2
	// DefaultMin is the smallest width a pane may take.
	DefaultMin = 5.0
)

// DefaultWidths is the initial split: certificates, board, media.
var DefaultWidths = [Panes]float64{20, 40, 40}

// session is captured at drag start and used for every move of the drag.
type session struct {
	resizer     int
	startX      float64
	startWidths [Panes]float64
}

// Layout holds the pane widths and the active drag.
type Layout struct {
	widths [Panes]float64
	min    float64
	drag   *session
}

// New returns a layout with widths. Widths must be positive, at least min,
// and sum to Total.
func New(widths []float64, min float64) (*Layout, error) {
	if len(widths) != Panes {
		return nil, fmt.Errorf("need %d pane widths, got %d", Panes, len(widths))
	}
	var w [Panes]float64
	var sum float64
	for i, v := range widths {
		if v < min || v <= 0 {
			return nil, fmt.Errorf("pane %d width %.2f below minimum %.2f", i, v, min)
		}
		w[i] = v
		sum += v
	}
	if math.Abs(sum-Total) > 1e-6 {
		return nil, fmt.Errorf("pane widths sum to %.2f, want %.0f", sum, Total)
	}
	return &Layout{widths: w, min: min}, nil
}

// Default returns the default layout.
func Default() *Layout {
	return &Layout{widths: DefaultWidths, min: DefaultMin}
}

// Widths returns the current widths.
func (l *Layout) Widths() [Panes]float64 { return l.widths }

// StartDrag begins dragging resizer (0 or 1) at pointer x.
func (l *Layout) StartDrag(resizer int, x float64) error {
	if resizer < 0 || resizer >= Panes-1 {
		return fmt.Errorf("no resizer %d", resizer)
	}
	l.drag = &session{resizer: resizer, startX: x, startWidths: l.widths}
	return nil
}

// Dragging reports whether a drag is active and which resizer it holds.
func (l *Layout) Dragging() (int, bool) {
	if l.drag == nil {
		return 0, false
	}
	return l.drag.resizer, true
}

// DragTo moves the active drag to pointer x inside a container totalWidth
// columns wide. It reports whether the widths changed.
func (l *Layout) DragTo(x float64, totalWidth int) bool {
	if l.drag == nil {
		return false
	}
	avail := float64(totalWidth - (Panes-1)*ResizerWidth)
	if avail <= 0 {
		return false
	}
	delta := (x - l.drag.startX) / avail * Total
	next, ok := l.adjusted(l.drag.startWidths, l.drag.resizer, delta)
	if !ok {
		return false
	}
	l.widths = next
	return true
}

// EndDrag finishes the drag.
func (l *Layout) EndDrag() {
	l.drag = nil
}

// Adjust moves resizer by delta units from the current widths, with the same
// rejection rule as a drag.
func (l *Layout) Adjust(resizer int, delta float64) bool {
	if resizer < 0 || resizer >= Panes-1 {
		return false
	}
	next, ok := l.adjusted(l.widths, resizer, delta)
	if ok {
		l.widths = next
	}
	return ok
}

func (l *Layout) adjusted(from [Panes]float64, resizer int, delta float64) ([Panes]float64, bool) {
	next := from
	next[resizer] = from[resizer] + delta
	next[resizer+1] = from[resizer+1] - delta
	if next[resizer] < l.min || next[resizer+1] < l.min {
		return from, false
	}
	return next, true
}

// Columns converts the widths into terminal columns for a container
// totalWidth columns wide. The panes plus both resizers add up to
// totalWidth exactly.
func (l *Layout) Columns(totalWidth int) [Panes]int {
	var cols [Panes]int
	avail := totalWidth - (Panes-1)*ResizerWidth
	if avail <= 0 {
		return cols
	}
	type rem struct {
		i    int
		frac float64
	}
	rems := make([]rem, Panes)
	used := 0
	for i, w := range l.widths {
		exact := w / Total * float64(avail)
		cols[i] = int(math.Floor(exact))
		used += cols[i]
		rems[i] = rem{i, exact - float64(cols[i])}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for k := 0; used < avail; k++ {
		cols[rems[k%Panes].i]++
		used++
	}
	return cols
}

// ResizerAt returns the resizer under column x, if any.
func (l *Layout) ResizerAt(x, totalWidth int) (int, bool) {
	cols := l.Columns(totalWidth)
	start := cols[0]
	for r := 0; r < Panes-1; r++ {
		if x >= start && x < start+ResizerWidth {
			return r, true
		}
		start += ResizerWidth + cols[r+1]
	}
	return 0, false
}

// PaneAt returns the pane under column x, if any.
func (l *Layout) PaneAt(x, totalWidth int) (int, bool) {
	cols := l.Columns(totalWidth)
	start := 0
	for p := 0; p < Panes; p++ {
		if x >= start && x < start+cols[p] {
			return p, true
		}
		start += cols[p] + ResizerWidth
	}
	return 0, false
}

// PaneStart returns the first column of pane p.
func (l *Layout) PaneStart(p, totalWidth int) int {
	cols := l.Columns(totalWidth)
	start := 0
	for i := 0; i < p && i < Panes; i++ {
		start += cols[i] + ResizerWidth
	}
	return start
}
