// Package app wires the command-line interface to the pomodoro timer
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomade/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomade app instance.
func Get() *cli.App {
	pomadeApp := &cli.App{
		Name: "pomade",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pomade is a pomodoro timer for the terminal. Start a work interval,
		acknowledge the alert when it runs out and take the break that follows.
		Every few work intervals the break is a long one.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the alert sounds found in the data directory",
				Action: soundsAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			soundFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return pomadeApp
}
