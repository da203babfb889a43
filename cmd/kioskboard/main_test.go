package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/kioskboard/cmd"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupConfig points configuration at a temp dir with empty section folders.
func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KIOSKBOARD_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("KIOSKBOARD_STATE_DIR", filepath.Join(dir, "state"))
	config.Load()
	config.Set("cert_dir", filepath.Join(dir, "Certificates"))
	config.Set("media_dir", filepath.Join(dir, "Videos"))
	return dir
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("hello"), 0o644))
	}
}

// execute runs c with args and returns what it printed.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range cmd.RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "show", "list", "scan", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestDashboardOptionsFromConfig(t *testing.T) {
	setupConfig(t)
	config.Set("batch_size", "3")
	config.Set("photo_dwell", "2s")
	config.Set("pane_widths", "30,40,30")
	config.Set("board_title", "Sprint")

	opts, err := dashboardOptions()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Carousel.BatchSize)
	assert.Equal(t, "2s", opts.Slideshow.PhotoDwell.String())
	assert.Equal(t, []float64{30, 40, 30}, opts.PaneWidths)
	assert.Equal(t, "Sprint", opts.Board.Title)
	assert.NotNil(t, opts.Certificates)
	assert.NotNil(t, opts.Media)
}

func TestDashboardOptionsFallsBackToDefaultWidths(t *testing.T) {
	setupConfig(t)
	config.Set("pane_widths", "50,50")

	opts, err := dashboardOptions()
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 40}, opts.PaneWidths)
}

func TestVideoTarget(t *testing.T) {
	dir := setupConfig(t)
	assert.Equal(t, filepath.Join(dir, "Videos", "clip.mp4"), videoTarget("clip.mp4"))

	config.Set("server_url", "http://kiosk:8000/")
	assert.Equal(t, "http://kiosk:8000/Videos/clip.mp4", videoTarget("clip.mp4"))
}

func TestNewSourcesRejectsBadIgnorePattern(t *testing.T) {
	setupConfig(t)
	config.Set("ignore_patterns", "[")

	_, _, err := newSources()
	assert.Error(t, err)
}
