package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/dotfetch/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file name.
	ConfigFileName = ".dotfetch.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/dotfetch"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. DOTFETCH_LAYOUT_GAP.
	EnvPrefix = "DOTFETCH"
)

// Load reads config from path. An empty path skips the file and returns
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Check the path passed to --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .dotfetch.yaml in the current directory
// 3. ~/.config/dotfetch/config.yaml
//
// Returns an empty string when nothing is found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config, falling back to defaults when no
// file exists. The returned path is empty in that case.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		source := "the environment"
		if path != "" {
			source = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.Screenshot.Dir = ExpandTilde(cfg.Screenshot.Dir)
	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("layout.start_row", d.Layout.StartRow)
	v.SetDefault("layout.gap", d.Layout.Gap)
	v.SetDefault("layout.clear_screen", d.Layout.ClearScreen)
	v.SetDefault("screenshot.enabled", d.Screenshot.Enabled)
	v.SetDefault("screenshot.dir", d.Screenshot.Dir)
	v.SetDefault("screenshot.countdown", d.Screenshot.Countdown)
	v.SetDefault("screenshot.tick", d.Screenshot.Tick.String())
	v.SetDefault("screenshot.wait", d.Screenshot.Wait.String())
	v.SetDefault("collect.timeout", d.Collect.Timeout.String())
	v.SetDefault("collect.cpu_sample", d.Collect.CPUSample.String())
	v.SetDefault("wait_for_key", d.WaitForKey)
	v.SetDefault("color", d.Color)
}
