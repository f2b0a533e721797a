package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomade/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyWorkMessage          = "work.message"
	keyWorkSound            = "work.sound"
	keyWorkColor            = "work.color"
	keyShortBreakDuration   = "short_break.duration"
	keyShortBreakMessage    = "short_break.message"
	keyShortBreakSound      = "short_break.sound"
	keyShortBreakColor      = "short_break.color"
	keyLongBreakDuration    = "long_break.duration"
	keyLongBreakMessage     = "long_break.message"
	keyLongBreakSound       = "long_break.sound"
	keyLongBreakColor       = "long_break.color"
	keyLongBreakInterval    = "settings.long_break_interval"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyBacklight            = "display.backlight"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with default values and
// whatever earlier options (such as the first-run prompt) have set.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		v.SetConfigPermissions(osutil.FilePermission)

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyWorkColor, "#B0DB43")
	v.SetDefault(keyWorkSound, "")
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyShortBreakSound, "")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keyLongBreakSound, "")
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyBacklight, "3s")
	v.SetDefault(keyLogLevel, "info")

	// values answered in the first-run prompt take precedence
	if c.Work.Duration != 0 {
		v.Set(keyWorkDuration, c.Work.Duration.String())
		v.Set(keyShortBreakDuration, c.ShortBreak.Duration.String())
		v.Set(keyLongBreakDuration, c.LongBreak.Duration.String())
		v.Set(keyLongBreakInterval, c.Settings.LongBreakInterval)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
