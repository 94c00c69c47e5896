package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
	"github.com/ayoisaiah/discipline/internal/ui"
)

func (m *Model) timerView() string {
	var s strings.Builder

	timer := m.store.Timer()

	if timer.Phase() == session.PhaseBreak {
		s.WriteString(m.styles.Break.Render())
	} else {
		s.WriteString(m.styles.Work.Render())
	}

	if m.store.Running() {
		end := m.now().Add(time.Duration(timer.RemainingSeconds) * time.Second)

		s.WriteString(m.styles.Hint.Render("until " + end.Format(m.timeFormat)))
	} else {
		s.WriteString(m.styles.Secondary.Render("[Paused]"))
	}

	total := m.store.Durations().Seconds(timer.Phase())

	var elapsed float64
	if total > 0 {
		elapsed = 1 - float64(timer.RemainingSeconds)/float64(total)
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.Clock(timer.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(elapsed))

	return s.String()
}

func (m *Model) taskListView() string {
	if len(m.tasks) == 0 {
		return m.styles.Hint.Render("No pending tasks. Press a to add one.")
	}

	var s strings.Builder

	for i, task := range m.tasks {
		line := fmt.Sprintf(
			"%d. %s %s",
			task.ID,
			task.Text,
			m.styles.Hint.Render(
				fmt.Sprintf("(%s, due %s)", task.Category, timeutil.FormatDue(task.Due)),
			),
		)

		if i == m.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}

		s.WriteString(line + "\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m *Model) reportView() string {
	r := m.store.Report()

	chart, err := ui.BarChart([]ui.Bar{
		{Label: "Tasks Completed", Value: r.CompletedTasks},
		{Label: "Pomodoros Completed", Value: r.PomodorosCompleted},
	})
	if err != nil {
		return err.Error()
	}

	return strings.TrimSpace(chart)
}

func (m *Model) helpView() string {
	if m.form != nil {
		return m.help.ShortHelpView([]key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		})
	}

	return m.help.View(defaultKeymap)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.timerView())

	if m.banner != "" {
		s.WriteString("\n\n" + m.styles.Banner.Render(m.banner))
	}

	s.WriteString("\n\n")

	if m.form != nil {
		s.WriteString(m.form.View())
	} else {
		s.WriteString(m.taskListView())
	}

	if m.showReport {
		s.WriteString("\n\n" + m.reportView())
	}

	if m.status != "" {
		s.WriteString("\n\n" + m.styles.Warning.Render(m.status))
	}

	s.WriteString("\n\n" + m.helpView())

	return m.styles.Base.Render(s.String())
}
