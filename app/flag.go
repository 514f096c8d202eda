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
		Usage:   "Disable the system notification that appears when a countdown completes",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when a countdown completes: a file path or a name from the sounds directory. Disable with 'off'",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the history as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list countdowns created after this point (e.g. '2 days ago')",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Delete every history entry",
	}
)
