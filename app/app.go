// Package app assembles chime's command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/chime-cli/chime/internal/config"
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

// Get retrieves the chime app instance.
func Get() *cli.App {
	chimeApp := &cli.App{
		Name: "chime",
		Usage: `
		Chime is a clock and countdown timer for the terminal. It shows the
		current time and runs any number of independent countdowns with
		pause/resume, completion sound and notification, and a persisted
		history of completed timers.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "history",
				Usage:  "List completed countdowns",
				Action: historyAction,
				Flags: []cli.Flag{
					jsonFlag,
					sinceFlag,
				},
			},
			{
				Name:      "delete-history",
				Usage:     "Permanently remove completed countdowns from the history",
				UsageText: "chime delete-history [--all] [ID...]",
				Action:    deleteHistoryAction,
				Flags: []cli.Flag{
					allFlag,
				},
			},
			{
				Name:   "sounds",
				Usage:  "List the available completion sounds",
				Action: soundsAction,
			},
		},
		Flags: []cli.Flag{
			disableNotificationFlag,
			soundFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return chimeApp
}
