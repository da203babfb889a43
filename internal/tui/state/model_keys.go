package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/kioskboard/internal/slideshow"
)

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.TogglePlay):
		m.slideshow.TogglePlay()
	case key.Matches(msg, m.keys.Next):
		m.slideshow.Skip(slideshow.Forward)
	case key.Matches(msg, m.keys.Prev):
		m.slideshow.Skip(slideshow.Backward)
	case key.Matches(msg, m.keys.ScrollUp):
		m.carousel.Gestures().OnWheel(-m.opts.WheelStep)
	case key.Matches(msg, m.keys.ScrollDown):
		m.carousel.Gestures().OnWheel(m.opts.WheelStep)
	case key.Matches(msg, m.keys.NarrowLeft):
		m.adjust(0, -1)
	case key.Matches(msg, m.keys.WidenLeft):
		m.adjust(0, 1)
	case key.Matches(msg, m.keys.NarrowRight):
		m.adjust(1, -1)
	case key.Matches(msg, m.keys.WidenRight):
		m.adjust(1, 1)
	case key.Matches(msg, m.keys.ResetLayout):
		if l, err := newLayout(m.opts.PaneWidths, m.opts.PaneMin); err == nil {
			m.layout = l
		}
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// adjust moves a resizer by delta units; a move that would squeeze a pane
// below its minimum is ignored.
func (m *Model) adjust(resizer int, delta float64) {
	if !m.layout.Adjust(resizer, delta) {
		m.logger.Debug("resize rejected", "resizer", resizer, "widths", m.layout.Widths())
	}
}

// reload fetches both listings again.
func (m *Model) reload() tea.Cmd {
	m.renderWidth = m.paneWidth(paneCertificates)
	m.preview, m.previewName, m.previewPending = nil, "", ""
	m.errorHandler.Clear()
	return tea.Batch(
		m.spinner.Tick,
		fetchCertificatesCmd(m.ctx, m.carousel),
		fetchMediaCmd(m.ctx, m.opts.Media),
	)
}
