// Package tui renders the chime clock and countdown list and drives all
// timer state changes from its redraw tick.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chime-cli/chime/countdown"
	"github.com/chime-cli/chime/internal/config"
	"github.com/chime-cli/chime/internal/models"
	"github.com/chime-cli/chime/store"
)

// tickInterval bounds the redraw cadence. All completion detection happens
// on this tick; nothing in the model blocks.
const tickInterval = 200 * time.Millisecond

// flashDuration is how long a completion message stays on screen.
const flashDuration = 5 * time.Second

type tickMsg time.Time

// Model is the bubbletea model for the clock and countdown view. It is the
// single mutator of the registry.
type Model struct {
	opts     *config.Config
	db       store.DB
	registry *countdown.Registry
	sounds   *soundPlayer

	labelInput    textinput.Model
	durationInput textinput.Model
	progress      progress.Model
	help          help.Model

	style styles

	now       time.Time
	flash     string
	flashTime time.Time
	inputErr  string
	selected  int
	adding    bool
	notify    bool
}

// New assembles the presentation model. A speaker that fails to initialize
// leaves the app in silent degraded mode rather than aborting.
func New(opts *config.Config, db store.DB, registry *countdown.Registry) *Model {
	labelInput := textinput.New()
	labelInput.Placeholder = "label (optional)"
	labelInput.Prompt = ""
	labelInput.CharLimit = 60
	labelInput.Width = 24

	durationInput := textinput.New()
	durationInput.Placeholder = "H:M:S"
	durationInput.Prompt = ""
	durationInput.CharLimit = 24
	durationInput.Width = 12

	return &Model{
		opts:          opts,
		db:            db,
		registry:      registry,
		sounds:        newSoundPlayer(),
		labelInput:    labelInput,
		durationInput: durationInput,
		progress: progress.New(
			progress.WithSolidFill(opts.Display.Color),
		),
		help:   help.New(),
		style:  newStyles(opts),
		now:    time.Now(),
		notify: opts.Notifications.Enabled,
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// historyEntries converts the registry's history for persistence.
func (m *Model) historyEntries() []*models.HistoryEntry {
	history := m.registry.History()

	entries := make([]*models.HistoryEntry, len(history))
	for i, t := range history {
		entries[i] = models.FromTask(t)
	}

	return entries
}
