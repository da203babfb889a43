package state

import (
	"github.com/cristianoliveira/kioskboard/internal/layout"
	"github.com/cristianoliveira/kioskboard/internal/settings"
)

// ToState extracts the session to persist.
func (m *Model) ToState() settings.TUIState {
	return settings.TUIState{
		PaneWidths: m.layout.Widths(),
		Paused:     !m.slideshow.Playing(),
	}
}

// applySettings restores a saved session.
func (m *Model) applySettings(s *settings.Settings) error {
	state := settings.FromSettings(s, m.layout.Widths())
	l, err := layout.New(state.PaneWidths[:], m.opts.PaneMin)
	if err != nil {
		return err
	}
	m.layout = l
	m.slideshow.SetPlaying(!state.Paused)
	m.settingsSvc.setLoadedSettings(s)
	return nil
}

// SaveSettings persists the current session.
func (m *Model) SaveSettings() error {
	return m.settingsSvc.save(m.ToState())
}
