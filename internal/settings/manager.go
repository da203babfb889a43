package settings

import "github.com/cristianoliveira/kioskboard/internal/layout"

// TUIState represents the dashboard state that can be persisted.
// This DTO keeps internal/settings independent from the TUI model.
type TUIState struct {
	PaneWidths [layout.Panes]float64
	Paused     bool
}

// FromSettings converts Settings to TUIState. Missing widths use fallback.
func FromSettings(s *Settings, fallback [layout.Panes]float64) TUIState {
	state := TUIState{PaneWidths: fallback}
	if s == nil {
		return state
	}
	if len(s.PaneWidths) == layout.Panes {
		copy(state.PaneWidths[:], s.PaneWidths)
	}
	state.Paused = s.Paused
	return state
}

// ToSettings converts TUIState to Settings.
func (t TUIState) ToSettings() *Settings {
	return &Settings{
		PaneWidths: append([]float64(nil), t.PaneWidths[:]...),
		Paused:     t.Paused,
	}
}
