package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after an interval ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each interval",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when any interval ends. Use 'pomade sounds' to list the options.\n\t\t\t\tDisable sound by setting to 'off'",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn or error (default: info)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration (default: 5m)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration (default: 15m)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of work intervals before a long break. 0 disables long breaks (default: 4)",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration (default: 25m)",
	}
)
