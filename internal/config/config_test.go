package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.Layout.StartRow)
	assert.Equal(t, 5, cfg.Layout.Gap)
	assert.False(t, cfg.Layout.ClearScreen)
	assert.True(t, cfg.Screenshot.Enabled)
	assert.Equal(t, ".", cfg.Screenshot.Dir)
	assert.Equal(t, 3, cfg.Screenshot.Countdown)
	assert.Equal(t, time.Second, cfg.Screenshot.Tick)
	assert.Zero(t, cfg.Screenshot.Wait)
	assert.Equal(t, 5*time.Second, cfg.Collect.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Collect.CPUSample)
	assert.True(t, cfg.WaitForKey)
	assert.Equal(t, "auto", cfg.Color)

	require.NoError(t, Validate(cfg))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
layout:
  start_row: 1
  gap: 2
  clear_screen: true
screenshot:
  enabled: false
  dir: /tmp/shots
  countdown: 5
  tick: 250ms
  wait: 3s
collect:
  timeout: 2s
  cpu_sample: 100ms
wait_for_key: false
color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Layout.StartRow)
	assert.Equal(t, 2, cfg.Layout.Gap)
	assert.True(t, cfg.Layout.ClearScreen)
	assert.False(t, cfg.Screenshot.Enabled)
	assert.Equal(t, "/tmp/shots", cfg.Screenshot.Dir)
	assert.Equal(t, 5, cfg.Screenshot.Countdown)
	assert.Equal(t, 250*time.Millisecond, cfg.Screenshot.Tick)
	assert.Equal(t, 3*time.Second, cfg.Screenshot.Wait)
	assert.Equal(t, 2*time.Second, cfg.Collect.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Collect.CPUSample)
	assert.False(t, cfg.WaitForKey)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "layout:\n  gap: 9\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Layout.Gap)
	assert.Equal(t, 3, cfg.Layout.StartRow)
	assert.Equal(t, 5*time.Second, cfg.Collect.Timeout)
	assert.True(t, cfg.Screenshot.Enabled)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOTFETCH_LAYOUT_GAP", "12")
	t.Setenv("DOTFETCH_SCREENSHOT_ENABLED", "false")
	t.Setenv("DOTFETCH_COLLECT_TIMEOUT", "8s")

	path := writeConfig(t, "layout:\n  gap: 2\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Layout.Gap, "environment wins over the file")
	assert.False(t, cfg.Screenshot.Enabled)
	assert.Equal(t, 8*time.Second, cfg.Collect.Timeout)
}

func TestLoad_ExpandsScreenshotDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfig(t, "screenshot:\n  dir: ~/Pictures\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Pictures"), cfg.Screenshot.Dir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "layout: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, "collect:\n  timeout: soon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	path := writeConfig(t, "color: auto\n")

	got, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFind_ExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)

	local := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(local, []byte("color: never\n"), 0o644))

	got, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, local, got)
}

func TestFind_GlobalFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0o755))
	require.NoError(t, os.WriteFile(global, []byte("color: always\n"), 0o644))

	got, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, global, got)
}

func TestLoadOrDefault_NothingFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_UsesFoundFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("layout:\n  start_row: 0\n"), 0o644))

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, 0, cfg.Layout.StartRow)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
