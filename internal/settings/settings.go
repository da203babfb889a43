package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/layout"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds the dashboard session persisted between runs.
//
// TOML Schema:
//
//	paneWidths = [20.0, 40.0, 40.0]
//	paused = false
//
// Settings are stored at ~/.config/kioskboard/tui.toml
type Settings struct {
	// PaneWidths are the proportional column widths. Empty means the
	// configured pane_widths.
	PaneWidths []float64 `toml:"paneWidths"`

	// Paused keeps the slideshow paused across restarts.
	Paused bool `toml:"paused"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		PaneWidths: append([]float64(nil), layout.DefaultWidths[:]...),
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	settingsPath := getSettingsPath()

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	if err := Validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	settingsPath := getSettingsPath()
	if err := os.MkdirAll(filepath.Dir(settingsPath), FileModeDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(settingsPath, data, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Path returns where settings are stored.
func Path() string { return getSettingsPath() }

// getSettingsPath honours tui_settings_path, then config_dir/tui.toml.
func getSettingsPath() string {
	if override := config.Get("tui_settings_path", ""); override != "" {
		return override
	}
	configDir := config.Get("config_dir", "")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "kioskboard")
	}
	return filepath.Join(configDir, tuiSettingsFilename)
}
