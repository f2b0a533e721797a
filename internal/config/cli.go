package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work              string
	ShortBreak        string
	LongBreak         string
	Sound             string
	SessionCmd        string
	LogLevel          string
	LongBreakInterval int
	DisableNotify     bool
	NoColor           bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:              ctx.String("work"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			Sound:             ctx.String("sound"),
			SessionCmd:        ctx.String("session-cmd"),
			LogLevel:          ctx.String("log-level"),
			LongBreakInterval: -1,
			DisableNotify:     ctx.Bool("disable-notification"),
			NoColor:           ctx.Bool("no-color"),
		}

		if ctx.IsSet("long-break-interval") {
			opts.LongBreakInterval = int(ctx.Uint("long-break-interval"))
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. A negative
// LongBreakInterval leaves the configured value alone.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.LongBreakInterval >= 0 {
		c.Settings.LongBreakInterval = opts.LongBreakInterval
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	applyCLISound(c, opts.Sound)

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := []struct {
		dst  *time.Duration
		name string
		val  string
	}{
		{&c.Work.Duration, "work", opts.Work},
		{&c.ShortBreak.Duration, "short break", opts.ShortBreak},
		{&c.LongBreak.Duration, "long break", opts.LongBreak},
	}

	for _, d := range durations {
		if d.val == "" {
			continue
		}

		dur, err := time.ParseDuration(d.val)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name, err)
		}

		*d.dst = dur
	}

	return nil
}

// applyCLISound sets the alert sound for every interval. "off" silences
// them.
func applyCLISound(c *Config, s string) {
	if s == "" {
		return
	}

	if s == "off" {
		s = ""
	}

	c.Work.Sound = s
	c.ShortBreak.Sound = s
	c.LongBreak.Sound = s
}
