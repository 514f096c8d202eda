package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/chime-cli/chime/countdown"
	"github.com/chime-cli/chime/internal/config"
	"github.com/chime-cli/chime/internal/timeutil"
)

const (
	padding  = 2
	maxWidth = 60

	// historyTail is how many completed countdowns the view shows.
	historyTail = 5
)

type styles struct {
	base     lipgloss.Style
	clock    lipgloss.Style
	heading  lipgloss.Style
	selected lipgloss.Style
	hint     lipgloss.Style
	paused   lipgloss.Style
	flash    lipgloss.Style
	errText  lipgloss.Style
}

func newStyles(opts *config.Config) styles {
	accent := lipgloss.Color(opts.Display.Color)

	return styles{
		base:     lipgloss.NewStyle().Padding(1, padding),
		clock:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		heading:  lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Foreground(accent),
		hint:     lipgloss.NewStyle().Faint(true),
		paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		flash:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.clockView())
	s.WriteString("\n\n")

	if m.adding {
		s.WriteString(m.formView())
		s.WriteString("\n")
	}

	s.WriteString(m.taskListView())

	if m.flash != "" {
		s.WriteString("\n" + m.style.flash.Render("🔔 "+m.flash+" finished!"))
		s.WriteString("\n")
	}

	s.WriteString(m.historyView())
	s.WriteString("\n" + m.helpView())

	return m.style.base.Render(s.String())
}

// clockView renders the current wall-clock time.
func (m *Model) clockView() string {
	timeFormat := "03:04:05 PM"
	if m.opts.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	return m.style.clock.Render(m.now.Format(timeFormat))
}

func (m *Model) formView() string {
	var s strings.Builder

	s.WriteString(m.style.heading.Render("New timer"))
	s.WriteString("\n")
	s.WriteString("name: " + m.labelInput.View())
	s.WriteString("\n")
	s.WriteString("time: " + m.durationInput.View())

	if m.inputErr != "" {
		s.WriteString("\n" + m.style.errText.Render(m.inputErr))
	}

	s.WriteString("\n")

	return s.String()
}

func (m *Model) taskListView() string {
	active := m.registry.Active()

	if len(active) == 0 {
		return m.style.hint.Render("No timers running. Press 'a' to add one.") + "\n"
	}

	var s strings.Builder

	for i, t := range active {
		s.WriteString(m.taskRowView(i, t))
		s.WriteString("\n")
	}

	return s.String()
}

func (m *Model) taskRowView(index int, t *countdown.Task) string {
	var s strings.Builder

	cursor := "  "
	label := t.Label

	if index == m.selected && !m.adding {
		cursor = "> "
		label = m.style.selected.Render(label)
	}

	remaining := timeutil.FormatSeconds(
		timeutil.Round(t.Remaining(m.now).Seconds()),
	)

	var tag string

	switch t.State(m.now) {
	case countdown.StatePaused:
		tag = " " + m.style.paused.Render("[paused]")
	case countdown.StateFinished:
		tag = " " + m.style.flash.Render("[done]")
	case countdown.StateRunning:
	}

	s.WriteString(fmt.Sprintf("%s%s  %s%s\n", cursor, label, remaining, tag))
	s.WriteString("  " + m.progress.ViewAs(t.Fraction(m.now)))

	return s.String()
}

func (m *Model) historyView() string {
	history := m.registry.History()
	if len(history) == 0 {
		return ""
	}

	start := len(history) - historyTail
	if start < 0 {
		start = 0
	}

	var s strings.Builder

	s.WriteString("\n" + m.style.heading.Render("Completed"))
	s.WriteString("\n")

	for i := len(history) - 1; i >= start; i-- {
		t := history[i]

		s.WriteString(m.style.hint.Render(fmt.Sprintf(
			"%s (%s)",
			t.Label,
			timeutil.FormatSeconds(timeutil.Round(t.Target.Seconds())),
		)))
		s.WriteString("\n")
	}

	return s.String()
}

func (m *Model) helpView() string {
	if m.adding {
		return m.help.ShortHelpView([]key.Binding{
			defaultKeymap.tab,
			defaultKeymap.enter,
			defaultKeymap.esc,
		})
	}

	return m.help.ShortHelpView([]key.Binding{
		defaultKeymap.add,
		defaultKeymap.togglePlay,
		defaultKeymap.remove,
		defaultKeymap.quit,
	})
}
