package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", tmp)
	config.Load()
	return tmp
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("KIOSKBOARD_LOGGING_ENABLED", "true")
	t.Setenv("KIOSKBOARD_LOGGING_LEVEL", "warn")
	t.Setenv("KIOSKBOARD_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("KIOSKBOARD_DEBUG", "true")
	t.Setenv("KIOSKBOARD_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("KIOSKBOARD_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("KIOSKBOARD_QUIET", "")
	t.Setenv("KIOSKBOARD_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp))

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Info("ignored")
	require.NoError(t, logger.Shutdown())
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Command = "show dashboard"

	logger, err := Init(cfg)
	require.NoError(t, err)
	logger.With("component", "carousel").Info("batch loaded", "loaded", 4, "failed", 1)
	require.NoError(t, logger.Shutdown())

	logDir, err := LogDir()
	require.NoError(t, err)
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	require.True(t, strings.HasPrefix(name, logFilePrefix))
	require.Contains(t, name, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.True(t, strings.HasSuffix(name, "_show_dashboard.log"))

	data, err := os.ReadFile(filepath.Join(logDir, name))
	require.NoError(t, err)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "batch loaded", entry["msg"])
	require.Equal(t, "carousel", entry["component"])
	require.Equal(t, float64(4), entry["loaded"])
}

func TestRedaction(t *testing.T) {
	r := newRedactor()
	out := r.redact([]any{
		"api_token", "abc",
		"board_url", "https://example.com/Doc.aspx?sourcedoc=1&access=xyz",
		"file", "cert.pdf",
		42, "non-string key",
	})
	require.Equal(t, "[REDACTED]", out[1])
	require.Equal(t, "https://example.com/Doc.aspx?[REDACTED]", out[3])
	require.Equal(t, "cert.pdf", out[5])
	require.Equal(t, "non-string key", out[7])

	// keys only match on whole segments
	require.False(t, r.isSensitive("monkey"))
	require.True(t, r.isSensitive("Secret-Value"))
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.log", logFilePrefix, i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), []byte("x"), 0o600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{logFilePrefix + "3.log", logFilePrefix + "4.log", "other.log"}, names)
}

func TestConsoleLoggerAndGlobal(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(NewConsole(&buf, "debug"))
	defer ShutdownGlobal()

	With("request_id", "r-1").Debug("listing served", "section", "certificates")
	require.Contains(t, buf.String(), "listing served")
	require.Contains(t, buf.String(), "request_id=r-1")
	require.Empty(t, CurrentLogFile())
}
