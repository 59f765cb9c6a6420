package cli

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dotfetch/internal/config"
	"github.com/rileyhilliard/dotfetch/internal/errors"
)

func TestPrintError(t *testing.T) {
	t.Run("structured error printed as-is", func(t *testing.T) {
		var buf bytes.Buffer
		printError(&buf, errors.New(errors.ErrConfig, "Bad config", "Fix it"))

		assert.Contains(t, buf.String(), "✗ Bad config")
		assert.Contains(t, buf.String(), "Fix it")
	})

	t.Run("plain error gets a marker", func(t *testing.T) {
		var buf bytes.Buffer
		printError(&buf, stderrors.New(`unknown flag: --nope`))

		assert.Equal(t, "✗ unknown flag: --nope\n", buf.String())
	})
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags flagOverrides
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "no flags keeps config",
			flags: flagOverrides{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultConfig(), cfg)
			},
		},
		{
			name:  "no screenshot",
			flags: flagOverrides{NoScreenshot: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Screenshot.Enabled)
				assert.True(t, cfg.WaitForKey)
			},
		},
		{
			name:  "no wait",
			flags: flagOverrides{NoWait: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.WaitForKey)
				assert.True(t, cfg.Screenshot.Enabled)
			},
		},
		{
			name:  "no color",
			flags: flagOverrides{NoColor: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "never", cfg.Color)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyFlags(cfg, tt.flags)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotfetch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  gap: 7\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Layout.Gap)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotfetch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: purple\n"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadConfig_MissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"no-screenshot", "no-wait"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["snapshot"])
	assert.True(t, names["version"])
}
