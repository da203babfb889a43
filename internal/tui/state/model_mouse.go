package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/kioskboard/internal/slideshow"
)

// handleMouseMsg routes wheel, drag and swipe input to the pane under the
// pointer.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	total := m.viewWidth()
	pane, inPane := m.layout.PaneAt(msg.X, total)
	if m.pointer == pointerNone {
		m.trackHover(inPane && pane == paneCertificates)
	}

	if tea.MouseEvent(msg).IsWheel() {
		if !inPane || pane != paneCertificates {
			return
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.carousel.Gestures().OnWheel(-m.opts.WheelStep)
		case tea.MouseButtonWheelDown:
			m.carousel.Gestures().OnWheel(m.opts.WheelStep)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.press(msg, total, pane, inPane)
		}
	case tea.MouseActionMotion:
		m.motion(msg, total)
	case tea.MouseActionRelease:
		m.release(msg)
	}
}

func (m *Model) trackHover(over bool) {
	g := m.carousel.Gestures()
	switch {
	case over && !g.Hovered():
		g.OnPointerEnter()
	case !over && g.Hovered():
		g.OnPointerLeave()
	}
}

func (m *Model) press(msg tea.MouseMsg, total, pane int, inPane bool) {
	if r, ok := m.layout.ResizerAt(msg.X, total); ok {
		if err := m.layout.StartDrag(r, float64(msg.X)); err == nil {
			m.pointer = pointerResizer
		}
		return
	}
	if !inPane {
		return
	}
	switch pane {
	case paneCertificates:
		m.carousel.Gestures().OnDragStart(float64(msg.Y))
		m.pointer = pointerCarousel
	case paneMedia:
		m.swipeStartX = msg.X
		m.pointer = pointerSwipe
	}
}

func (m *Model) motion(msg tea.MouseMsg, total int) {
	switch m.pointer {
	case pointerResizer:
		m.layout.DragTo(float64(msg.X), total)
	case pointerCarousel:
		m.carousel.Gestures().OnDragMove(float64(msg.Y))
	}
}

func (m *Model) release(msg tea.MouseMsg) {
	switch m.pointer {
	case pointerResizer:
		m.layout.EndDrag()
	case pointerCarousel:
		m.carousel.Gestures().OnDragEnd()
	case pointerSwipe:
		// a release short of the threshold is a tap
		if m.slideshow.Swipe(float64(m.swipeStartX), float64(msg.X)) == slideshow.None {
			m.slideshow.TogglePlay()
		}
	}
	m.pointer = pointerNone
}
