package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/chime-cli/chime/countdown"
	"github.com/chime-cli/chime/internal/config"
	"github.com/chime-cli/chime/internal/models"
	"github.com/chime-cli/chime/internal/timeutil"
	"github.com/chime-cli/chime/internal/ui"
	"github.com/chime-cli/chime/store"
	"github.com/chime-cli/chime/tui"
)

const (
	envNoColor      = "NO_COLOR"
	envChimeNoColor = "CHIME_NO_COLOR"
	envChimeDebug   = "CHIME_DEBUG"
)

// initLogging routes slog through a size-rotated log file in the data
// directory.
func initLogging() {
	level := slog.LevelInfo
	if os.Getenv(envChimeDebug) != "" {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(
		slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	if ctx.Bool("disable-notification") {
		cfg.Notifications.Enabled = false
	}

	if sound := ctx.String("sound"); sound != "" {
		if sound == config.SoundOff {
			cfg.Timers.Sound = ""
		} else {
			cfg.Timers.Sound = sound
		}
	}

	return cfg, nil
}

// defaultAction launches the clock and countdown interface.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	// a datastore read failure falls back to an empty in-memory history
	// rather than aborting
	entries, err := db.GetHistory()
	if err != nil {
		slog.Error("unable to load history, starting empty", "error", err)

		entries = nil
	}

	if color, cerr := db.GetColor(); cerr == nil && color != "" {
		if config.ValidColor(color) {
			cfg.Display.Color = color
		} else {
			slog.Warn("ignoring invalid saved display color", "color", color)
		}
	}

	registry := countdown.NewRegistry()
	registry.LabelPrefix = cfg.Timers.LabelPrefix
	registry.LoadHistory(restoreTasks(entries))

	ui.DarkTheme = cfg.Display.DarkTheme

	p := tea.NewProgram(tui.New(cfg, db, registry))

	_, err = p.Run()

	return err
}

// restoreTasks converts persisted entries back to tasks, skipping records
// that no longer parse.
func restoreTasks(entries []*models.HistoryEntry) []*countdown.Task {
	tasks := make([]*countdown.Task, 0, len(entries))

	for _, entry := range entries {
		t, err := entry.ToTask()
		if err != nil {
			slog.Error("skipping corrupt history entry",
				"id", entry.ID, "error", err)

			continue
		}

		tasks = append(tasks, t)
	}

	return tasks
}

// historyAction lists completed countdowns in a table or as JSON.
func historyAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	entries, err := db.GetHistory()
	if err != nil {
		return err
	}

	if since := ctx.String("since"); since != "" {
		entries, err = filterSince(entries, since)
		if err != nil {
			return err
		}
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printHistoryTable(entries)

	return nil
}

// filterSince keeps entries created at or after the given point in time,
// which may be expressed in natural language.
func filterSince(
	entries []*models.HistoryEntry,
	since string,
) ([]*models.HistoryEntry, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, since)
	if err != nil {
		return nil, fmt.Errorf("unable to parse --since value: %w", err)
	}

	var kept []*models.HistoryEntry

	for _, entry := range entries {
		createdAt, err := timeutil.ParseTimestamp(entry.CreatedAt)
		if err != nil {
			continue
		}

		if !createdAt.Before(dt.Time) {
			kept = append(kept, entry)
		}
	}

	return kept, nil
}

func printHistoryTable(entries []*models.HistoryEntry) {
	tableBody := make([][]string, len(entries))

	for i, entry := range entries {
		tableBody[i] = []string{
			strconv.Itoa(entry.ID),
			ui.Highlight(entry.Label),
			entry.Input,
			ui.Green(timeutil.FormatSeconds(int(entry.DurationSeconds))),
			entry.CreatedAt,
		}
	}

	tableBody = append([][]string{
		{"ID", "LABEL", "INPUT", "DURATION", "CREATED"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)
}

// deleteHistoryAction permanently removes history entries after
// confirmation.
func deleteHistoryAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if ctx.Bool("all") {
		ok, err := confirmDelete("Delete the entire countdown history?")
		if err != nil || !ok {
			return err
		}

		err = db.SaveHistory(nil)
		if err != nil {
			return err
		}

		pterm.Println(ui.Red("History deleted"))

		return nil
	}

	var ids []int

	for _, arg := range ctx.Args().Slice() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid history id %q", arg)
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		pterm.Println(ui.Yellow("Nothing to delete: specify entry ids or --all"))
		return nil
	}

	ok, err := confirmDelete(
		fmt.Sprintf("Delete %d history entries?", len(ids)),
	)
	if err != nil || !ok {
		return err
	}

	err = db.DeleteHistory(ids)
	if err != nil {
		return err
	}

	pterm.Println(ui.Red(fmt.Sprintf("Deleted %d history entries", len(ids))))

	return nil
}

func confirmDelete(title string) (bool, error) {
	var confirmed bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// soundsAction lists the completion sounds available in the sounds
// directory.
func soundsAction(_ *cli.Context) error {
	for _, opt := range config.SoundOpts() {
		pterm.Println(opt)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CHIME_NO_COLOR is set
	if _, exists := os.LookupEnv(envChimeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting chime")

	return nil
}
