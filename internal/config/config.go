// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files (primary format).
	FileExtTOML = ".toml"
	// FileExtYAML is accepted for configuration files written by hand.
	FileExtYAML = ".yaml"

	envPrefix = "KIOSKBOARD_"
)

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)

	setDefaults()
	// Environment first so KIOSKBOARD_CONFIG_DIR can move the config file.
	loadFromEnv()
	loadFromFile()
	// Re-apply environment variable overrides so env wins
	loadFromEnv()
	validate()
	createSampleConfig()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "kioskboard"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "kioskboard"))

	// Listing server
	setDefault("cert_dir", "Certificates")
	setDefault("media_dir", "Videos")
	setDefault("web_root", ".")
	setDefault("listen_addr", ":8000")
	setDefault("catalog_backend", "memory")
	setDefault("ignore_patterns", ".*,~$*,Thumbs.db")

	// Dashboard
	setDefault("server_url", "")
	setDefault("scroll_speed", "0.1")
	setDefault("frame_interval", "50ms")
	setDefault("resume_delay", "3s")
	setDefault("wheel_scale", "0.5")
	setDefault("drag_scale", "1")
	setDefault("wheel_step", "2")
	setDefault("batch_size", "5")
	setDefault("batch_pause", "100ms")
	setDefault("pdf_timeout", "15s")
	setDefault("item_gap", "1")
	setDefault("photo_dwell", "5s")
	setDefault("feedback_duration", "1s")
	setDefault("swipe_threshold", "6")
	setDefault("video_player", "")
	setDefault("board_title", "Board")
	setDefault("board_url", "")
	setDefault("pane_widths", "20,40,40")
	setDefault("pane_min", "5")

	// Hooks
	setDefault("hooks_dir", "")
	setDefault("hooks_failure_mode", "warn")
	setDefault("hooks_async", "false")
	setDefault("hooks_timeout", "30s")
	setDefault("hooks_max_async", "10")

	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// configFilePath returns the config file to read, or "" when none exists.
// KIOSKBOARD_CONFIG_PATH wins; otherwise config.toml then config.yaml in config_dir.
func configFilePath() string {
	if p := os.Getenv(envPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	configDir := config["config_dir"]
	if configDir == "" {
		return ""
	}
	for _, ext := range []string{FileExtTOML, FileExtYAML} {
		candidate := filepath.Join(configDir, "config"+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// loadFromFile reads configuration from a file.
func loadFromFile() {
	configPath := configFilePath()
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case FileExtTOML:
		err = toml.Unmarshal(data, &raw)
	case FileExtYAML, ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		colors.Warning(fmt.Sprintf("unsupported config file format: %s", configPath))
		return
	}
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string representation.
// Lists (pane_widths = [20, 40, 40], ignore_patterns = [".*"]) are joined with commas.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	case []interface{}:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := coerceConfigValue(item)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// createSampleConfig creates a sample configuration file if none exists.
func createSampleConfig() {
	configDir := config["config_dir"]
	if configDir == "" || configFilePath() != "" {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	typed := make(map[string]interface{})
	for k, v := range configMap {
		if k == "config_dir" || k == "state_dir" {
			continue
		}
		typed[k] = valueToInterface(v)
	}

	data, err := toml.Marshal(typed)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# kioskboard configuration\n# This file is in TOML format.\n# Edit values as needed; KIOSKBOARD_<KEY> environment variables win.\n\n"
	samplePath := filepath.Join(configDir, "config"+FileExtTOML)
	if err := os.WriteFile(samplePath, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", samplePath, err))
	}
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// Set overrides a single value for the rest of the process lifetime.
// Command-line flags use it to take precedence over file and environment.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	config[key] = value
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetFloat returns a configuration value as float64, or default.
func GetFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(Get(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetDuration returns a configuration value as a time.Duration, or default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	switch normalizeBool(Get(key, "")) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// GetList returns a comma separated configuration value as trimmed items.
// Empty items are dropped.
func GetList(key string) []string {
	raw := Get(key, "")
	if raw == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// GetFloatList returns a comma separated list of numbers, or nil when any item is not a number.
func GetFloatList(key string) []float64 {
	items := GetList(key)
	values := make([]float64, 0, len(items))
	for _, item := range items {
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil
		}
		values = append(values, f)
	}
	return values
}
