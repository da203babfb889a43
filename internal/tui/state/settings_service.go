package state

import (
	"fmt"
	"reflect"

	"github.com/cristianoliveira/kioskboard/internal/settings"
)

type settingsService struct {
	loadedSettings *settings.Settings
	saveFn         func(*settings.Settings) error
}

func newSettingsService(saveFn func(*settings.Settings) error) *settingsService {
	return &settingsService{saveFn: saveFn}
}

func (s *settingsService) setLoadedSettings(loaded *settings.Settings) {
	s.loadedSettings = loaded
}

// save writes state unless it matches what was loaded.
func (s *settingsService) save(state settings.TUIState) error {
	nextSettings := state.ToSettings()
	if s.loadedSettings != nil && reflect.DeepEqual(*s.loadedSettings, *nextSettings) {
		return nil
	}
	if err := s.saveFn(nextSettings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.loadedSettings = nextSettings
	return nil
}
