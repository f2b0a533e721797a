// Package config is responsible for setting the program config from
// the config file, first-run prompts and command-line arguments
package config

import (
	"time"

	"github.com/ayoisaiah/pomade/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig      `mapstructure:"work"`
		ShortBreak    SessionConfig      `mapstructure:"short_break"`
		LongBreak     SessionConfig      `mapstructure:"long_break"`
		Log           LogConfig          `mapstructure:"log"`
		System        SystemConfig       `mapstructure:"-"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// SessionConfig holds the settings for one kind of interval.
	SessionConfig struct {
		Message  string        `mapstructure:"message"`
		Color    string        `mapstructure:"color"`
		Sound    string        `mapstructure:"sound"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds general timer settings.
	SettingsConfig struct {
		Cmd               string `mapstructure:"cmd"`
		LongBreakInterval int    `mapstructure:"long_break_interval"`
		TwentyFourHour    bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Backlight time.Duration `mapstructure:"backlight"`
		DarkTheme bool          `mapstructure:"dark_theme"`
		NoColor   bool          `mapstructure:"-"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds file locations. It is not read from the config file.
	SystemConfig struct {
		ConfigPath string
		LogPath    string
		SoundDir   string
		IconDir    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// WithSystemPaths records where the application keeps its files.
func WithSystemPaths(sys SystemConfig) Option {
	return func(c *Config) error {
		c.System = sys
		return nil
	}
}

// Session returns the settings for an interval kind.
func (c *Config) Session(kind session.Kind) SessionConfig {
	switch kind {
	case session.ShortBreak:
		return c.ShortBreak
	case session.LongBreak:
		return c.LongBreak
	default:
		return c.Work
	}
}

// Durations returns the configured length of each interval kind.
func (c *Config) Durations() map[session.Kind]time.Duration {
	return map[session.Kind]time.Duration{
		session.Work:       c.Work.Duration,
		session.ShortBreak: c.ShortBreak.Duration,
		session.LongBreak:  c.LongBreak.Duration,
	}
}

// Messages returns the message shown while each interval kind runs.
func (c *Config) Messages() map[session.Kind]string {
	return map[session.Kind]string{
		session.Work:       c.Work.Message,
		session.ShortBreak: c.ShortBreak.Message,
		session.LongBreak:  c.LongBreak.Message,
	}
}
