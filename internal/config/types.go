package config

import "time"

// Config is the dotfetch configuration loaded from .dotfetch.yaml, the global
// config file and DOTFETCH_* environment variables.
type Config struct {
	Layout     LayoutConfig     `yaml:"layout" mapstructure:"layout"`
	Screenshot ScreenshotConfig `yaml:"screenshot" mapstructure:"screenshot"`
	Collect    CollectConfig    `yaml:"collect" mapstructure:"collect"`

	// WaitForKey holds the dashboard on screen until a key is pressed.
	// Ignored when stdin is not a terminal.
	WaitForKey bool `yaml:"wait_for_key" mapstructure:"wait_for_key"`

	// Color: auto, always, never.
	Color string `yaml:"color" mapstructure:"color" validate:"oneof=auto always never"`
}

// LayoutConfig places the dashboard on screen.
type LayoutConfig struct {
	// StartRow is the first row of the logo and the label column.
	StartRow int `yaml:"start_row" mapstructure:"start_row" validate:"gte=0,lte=200"`

	// Gap is the number of blank columns between the logo and the labels.
	Gap int `yaml:"gap" mapstructure:"gap" validate:"gte=0,lte=80"`

	ClearScreen bool `yaml:"clear_screen" mapstructure:"clear_screen"`
}

// ScreenshotConfig controls the delayed screen capture.
type ScreenshotConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir" validate:"required"`

	// Countdown is the number of progress dots printed before capturing.
	Countdown int `yaml:"countdown" mapstructure:"countdown" validate:"gte=0,lte=60"`

	// Tick is the delay between dots.
	Tick time.Duration `yaml:"tick" mapstructure:"tick" validate:"gte=0,lte=1m"`

	// Wait is how long to wait for a pending capture before exiting.
	// Zero detaches immediately.
	Wait time.Duration `yaml:"wait" mapstructure:"wait" validate:"gte=0,lte=5m"`
}

// CollectConfig bounds fact collection.
type CollectConfig struct {
	// Timeout applies to each category independently.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0,lte=1m"`

	// CPUSample is the window used to measure CPU load.
	CPUSample time.Duration `yaml:"cpu_sample" mapstructure:"cpu_sample" validate:"gt=0,ltfield=Timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			StartRow: 3,
			Gap:      5,
		},
		Screenshot: ScreenshotConfig{
			Enabled:   true,
			Dir:       ".",
			Countdown: 3,
			Tick:      time.Second,
		},
		Collect: CollectConfig{
			Timeout:   5 * time.Second,
			CPUSample: 500 * time.Millisecond,
		},
		WaitForKey: true,
		Color:      "auto",
	}
}
