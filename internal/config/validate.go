package config

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ayoisaiah/pomade/internal/logger"
	"github.com/ayoisaiah/pomade/internal/sound"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	// Valid long break intervals. Zero disables long breaks.
	minLongBreakInterval = 2
	maxLongBreakInterval = 10

	maxBacklight = time.Minute

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSessionConfig(c.Work, "work"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.ShortBreak, "short break"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.LongBreak, "long break"); err != nil {
		return err
	}

	if err := c.validateSessionRelationships(); err != nil {
		return err
	}

	return c.validateSettings()
}

// validateSessionConfig validates an individual SessionConfig.
func (c *Config) validateSessionConfig(
	sc SessionConfig,
	sessionType string,
) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			sessionType,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(sessionType)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(sessionType, sc.Color)
	}

	if sc.Sound != "" {
		return c.validateSound(sc.Sound, sessionType)
	}

	return nil
}

// validateSettings validates everything outside the session blocks.
func (c *Config) validateSettings() error {
	n := c.Settings.LongBreakInterval
	if n != 0 && (n < minLongBreakInterval || n > maxLongBreakInterval) {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Display.Backlight < 0 || c.Display.Backlight > maxBacklight {
		return errInvalidBacklight.Fmt(maxBacklight)
	}

	if !logger.ValidLevel(c.Log.Level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

// validateSessionRelationships validates logical relationships between sessions.
func (c *Config) validateSessionRelationships() error {
	if c.ShortBreak.Duration >= c.Work.Duration {
		return errShortBreakTooLong.Fmt(c.ShortBreak.Duration, c.Work.Duration)
	}

	if c.LongBreak.Duration < c.ShortBreak.Duration {
		return errLongBreakTooShort.Fmt(
			c.LongBreak.Duration,
			c.ShortBreak.Duration,
		)
	}

	return nil
}

// validateSound checks that a sound has a playable format and exists.
func (c *Config) validateSound(name, sessionType string) error {
	path := c.SoundPath(name)

	if err := sound.CheckFormat(path); err != nil {
		return err
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sessionType, name)
	}

	return nil
}

// SoundPath resolves a configured sound name to a file path.
func (c *Config) SoundPath(name string) string {
	return sound.Resolve(name, c.System.SoundDir)
}
