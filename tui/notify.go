package tui

import (
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/chime-cli/chime/internal/config"
)

// notify sends a desktop notification for a finished countdown.
func notify(label, msg string) {
	title := label + " is finished"

	// pathToIcon will be an empty string if the file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		slog.Error("unable to display notification", "error", err)
	}
}

// runCompletionCmd executes the configured completion command. It runs off
// the control thread; failures are logged and swallowed.
func runCompletionCmd(completionCmd string) {
	cmdSlice, err := shellquote.Split(completionCmd)
	if err != nil {
		slog.Error("unable to parse timers.cmd option", "error", err)
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	err = exec.Command(name, args...).Run()
	if err != nil {
		slog.Error("completion command failed", "error", err)
	}
}
