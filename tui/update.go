package tui

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/chime-cli/chime/countdown"
)

var debugDump = os.Getenv("CHIME_DEBUG") != ""

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if debugDump {
			slog.Debug(spew.Sdump(msg))
		}

		if m.adding {
			return m.handleFormKey(msg)
		}

		return m.handleListKey(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil
	}

	return m, nil
}

// handleTick advances the wall clock, finalizes newly completed countdowns,
// and sweeps drained sound handles.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.now = time.Time(msg)

	for _, t := range m.registry.Tick(m.now) {
		m.finalize(t)
	}

	m.sounds.sweep()

	if m.flash != "" && m.now.Sub(m.flashTime) > flashDuration {
		m.flash = ""
	}

	m.clampSelection()

	return m, tick()
}

// finalize performs the one-time completion side effects for a task returned
// by the registry tick. Collaborator failures are logged and swallowed; the
// countdown's correctness does not depend on them.
func (m *Model) finalize(t *countdown.Task) {
	err := m.db.SaveHistory(m.historyEntries())
	if err != nil {
		slog.Error("unable to persist history", "error", err)
	}

	if m.notify {
		notify(t.Label, m.opts.Timers.Message)
	}

	m.sounds.play(m.opts.Timers.Sound)

	if m.opts.Timers.Cmd != "" {
		go runCompletionCmd(m.opts.Timers.Cmd)
	}

	m.flash = t.Label
	m.flashTime = m.now
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.enter):
		m.submitForm()
		return m, nil

	case key.Matches(msg, defaultKeymap.esc):
		m.resetForm()
		return m, nil

	case key.Matches(msg, defaultKeymap.tab):
		if m.labelInput.Focused() {
			m.labelInput.Blur()
			m.durationInput.Focus()
		} else {
			m.durationInput.Blur()
			m.labelInput.Focus()
		}

		return m, nil
	}

	var cmd tea.Cmd

	if m.labelInput.Focused() {
		m.labelInput, cmd = m.labelInput.Update(msg)
	} else {
		m.durationInput, cmd = m.durationInput.Update(msg)
	}

	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.add):
		m.adding = true
		m.labelInput.Focus()

		return m, nil

	case key.Matches(msg, defaultKeymap.up):
		if m.selected > 0 {
			m.selected--
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.down):
		if m.selected < len(m.registry.Active())-1 {
			m.selected++
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		if t := m.selectedTask(); t != nil {
			if t.Paused() {
				m.registry.Resume(t.ID, m.now)
			} else {
				m.registry.Pause(t.ID, m.now)
			}
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.remove):
		if t := m.selectedTask(); t != nil {
			m.registry.Remove(t.ID)
			m.clampSelection()
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.quit):
		m.persist()

		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

// submitForm validates the form and starts a countdown. Parse and zero
// duration failures leave the input in place for correction.
func (m *Model) submitForm() {
	input := m.durationInput.Value()

	target, err := countdown.Parse(input)
	if err != nil {
		m.inputErr = err.Error()
		return
	}

	_, err = m.registry.Add(m.labelInput.Value(), input, target, m.now)
	if err != nil {
		// zero-length durations parse fine but never become tasks
		m.inputErr = err.Error()
		return
	}

	m.resetForm()
}

func (m *Model) resetForm() {
	m.adding = false
	m.inputErr = ""
	m.labelInput.SetValue("")
	m.durationInput.SetValue("")
	m.labelInput.Blur()
	m.durationInput.Blur()
}

// persist rewrites the full history and display color before exit.
func (m *Model) persist() {
	err := m.db.SaveHistory(m.historyEntries())
	if err != nil {
		slog.Error("unable to persist history", "error", err)
	}

	err = m.db.SaveColor(m.opts.Display.Color)
	if err != nil {
		slog.Error("unable to persist display color", "error", err)
	}
}

func (m *Model) selectedTask() *countdown.Task {
	active := m.registry.Active()
	if m.selected < 0 || m.selected >= len(active) {
		return nil
	}

	return active[m.selected]
}

func (m *Model) clampSelection() {
	if n := len(m.registry.Active()); m.selected >= n && n > 0 {
		m.selected = n - 1
	} else if n == 0 {
		m.selected = 0
	}
}
