package state

import (
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/carousel"
	"github.com/cristianoliveira/kioskboard/internal/layout"
	"github.com/cristianoliveira/kioskboard/internal/tui/render"
)

// View renders the dashboard.
func (m *Model) View() string {
	width, height := m.viewWidth(), m.viewHeight()
	footer := m.footer(width)
	bodyHeight := max(height-len(footer), 2)
	cols := m.layout.Columns(width)
	active, dragging := m.layout.Dragging()

	certs := render.Certificates(render.CertificatesState{
		Files:   len(m.carousel.Files()),
		Loading: m.carousel.State() == carousel.Loading || m.carousel.State() == carousel.Idle,
		Empty:   m.carousel.State() == carousel.Empty,
		Failed:  m.carousel.Err() != nil,
		Spinner: m.spinner.View(),
		Rows:    m.carousel.Viewport(bodyHeight - 1),
	}, cols[paneCertificates], bodyHeight)

	board := render.Board(m.opts.Board, cols[paneBoard], bodyHeight)

	name, kind, _ := m.slideshow.Current()
	mediaState := render.MediaState{
		Loaded:   m.slideshow.Loaded(),
		Failed:   m.slideshow.Err() != nil,
		Spinner:  m.spinner.View(),
		Name:     name,
		Kind:     kind,
		Position: m.slideshow.Position(),
		Playing:  m.slideshow.Playing(),
		Blocked:  m.slideshow.Blocked(),
		Label:    m.slideshow.Label(),
	}
	if name != "" && name == m.previewName {
		mediaState.Preview = m.preview
	}
	mediaPane := render.Media(mediaState, cols[paneMedia], bodyHeight)

	var s strings.Builder
	s.WriteString(render.Columns(
		certs,
		render.Resizer(layout.ResizerWidth, bodyHeight, dragging && active == 0),
		board,
		render.Resizer(layout.ResizerWidth, bodyHeight, dragging && active == 1),
		mediaPane,
	))
	for _, line := range footer {
		s.WriteString("\n")
		s.WriteString(line)
	}
	return s.String()
}

// footer renders the status line, or the full key help when toggled.
func (m *Model) footer(width int) []string {
	if m.help.ShowAll {
		lines := strings.Split(m.help.View(m.keys), "\n")
		for i, l := range lines {
			lines[i] = render.Fit(l, width)
		}
		return lines
	}
	if msg, ok := m.errorHandler.Latest(messageTTL); ok {
		return []string{render.StatusLine(&msg, "", width)}
	}
	return []string{render.StatusLine(nil, m.help.ShortHelpView(m.keys.ShortHelp()), width)}
}
