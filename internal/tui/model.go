// Package tui is the interactive terminal interface: the task list, the
// work/break countdown and the report, driven by the session store
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/discipline/internal/apperr"
	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/history"
	"github.com/ayoisaiah/discipline/internal/session"
)

const (
	padding       = 2
	maxWidth      = 80
	bannerTimeout = 5 * time.Second
)

var titles = map[session.Phase]string{
	session.PhaseBreak: "Break Time",
	session.PhaseWork:  "Work Time",
}

// PhaseNotifier is told about every phase change.
type PhaseNotifier interface {
	PhaseChanged(ev session.Event) error
}

type (
	eventMsg session.Event

	eventsClosedMsg struct{}

	notifiedMsg struct {
		err error
	}

	clearBannerMsg struct {
		id int
	}
)

// Model is the bubbletea model for the discipline interface.
type Model struct {
	store      *session.Store
	history    history.DB
	notifier   PhaseNotifier
	cfg        *config.Config
	events     <-chan session.Event
	form       *huh.Form
	draft      *taskDraft
	now        func() time.Time
	styles     styles
	status     string
	banner     string
	timeFormat string
	tasks      []session.Task
	help       help.Model
	progress   progress.Model
	cursor     int
	bannerID   int
	showReport bool
}

// New creates the model. db and n may be nil.
func New(
	cfg *config.Config,
	store *session.Store,
	db history.DB,
	n PhaseNotifier,
) *Model {
	events, _ := store.Subscribe()

	timeFormat := "03:04:05 PM"
	if cfg.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	m := &Model{
		store:      store,
		history:    db,
		notifier:   n,
		cfg:        cfg,
		events:     events,
		now:        time.Now,
		styles:     newStyles(cfg.Display.DarkTheme),
		timeFormat: timeFormat,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
	}

	m.refresh()

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks until the store publishes the next event.
func (m *Model) waitForEvent() tea.Cmd {
	events := m.events

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}

		return eventMsg(ev)
	}
}

// refresh reloads the pending tasks and keeps the cursor in range.
func (m *Model) refresh() {
	m.tasks = m.store.Pending()

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

// feedback turns the outcome of an operation into a status line.
func (m *Model) feedback(err error, success string) {
	switch {
	case err == nil:
		m.status = success
	case errors.Is(err, apperr.Validation),
		errors.Is(err, apperr.NotFound),
		errors.Is(err, apperr.Parse):
		m.status = err.Error()
	case errors.Is(err, apperr.IO):
		m.status = "Warning: " + err.Error()
	default:
		m.status = err.Error()
	}
}

func (m *Model) selected() (session.Task, bool) {
	if len(m.tasks) == 0 {
		return session.Task{}, false
	}

	return m.tasks[m.cursor], true
}

func (m *Model) completeSelected() {
	task, ok := m.selected()
	if !ok {
		m.status = "No task selected"
		return
	}

	_, err := m.store.CompleteTask(task.ID)

	m.feedback(err, "Completed: "+task.Text)
	m.refresh()
}

func (m *Model) removeSelected() {
	task, ok := m.selected()
	if !ok {
		m.status = "No task selected"
		return
	}

	err := m.store.RemoveTask(task.ID)

	m.feedback(err, "Removed: "+task.Text)
	m.refresh()
}

func (m *Model) togglePlay() {
	if !m.store.Running() {
		m.store.StartTimer()
		m.status = ""

		return
	}

	m.feedback(m.store.StopTimer(), "")
}

func (m *Model) openForm() tea.Cmd {
	m.draft = &taskDraft{category: string(session.Work)}
	m.form = newTaskForm(m.draft)

	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.draft = nil
}

// submitTask adds the task described by the form values.
func (m *Model) submitTask() {
	defer m.closeForm()

	due, category, err := m.draft.parse(m.now())
	if err != nil {
		m.feedback(err, "")
		return
	}

	task, err := m.store.AddTask(m.draft.text, due, category)

	m.feedback(err, "Added: "+task.Text)
	m.refresh()
}

func (m *Model) notifyCmd(ev session.Event) tea.Cmd {
	if m.notifier == nil {
		return nil
	}

	n := m.notifier

	return func() tea.Msg {
		return notifiedMsg{err: n.PhaseChanged(ev)}
	}
}

func (m *Model) showBanner(text string) tea.Cmd {
	m.bannerID++
	m.banner = text

	id := m.bannerID

	return tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
		return clearBannerMsg{id: id}
	})
}

// handlePhaseChange logs the finished phase, shows a banner for the new one
// and sends the notification in the background.
func (m *Model) handlePhaseChange(ev session.Event) tea.Cmd {
	if m.history != nil {
		err := m.history.Add(history.RecordFromEvent(ev, m.store.Durations()))
		if err != nil {
			slog.Error("recording phase failed", slog.Any("error", err))
		}
	}

	if ev.Err != nil {
		m.feedback(ev.Err, "")
	}

	banner := titles[ev.To] + ": " + m.cfg.Message(ev.To)

	return tea.Batch(m.showBanner(banner), m.notifyCmd(ev))
}

func (m *Model) handleEvent(ev session.Event) tea.Cmd {
	var cmd tea.Cmd

	if ev.Type == session.EventPhaseChange {
		cmd = m.handlePhaseChange(ev)
	}

	return tea.Batch(cmd, m.waitForEvent())
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitTask()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		m.togglePlay()

	case key.Matches(msg, defaultKeymap.add):
		return m, m.openForm()

	case key.Matches(msg, defaultKeymap.complete):
		m.completeSelected()

	case key.Matches(msg, defaultKeymap.remove):
		m.removeSelected()

	case key.Matches(msg, defaultKeymap.report):
		m.showReport = !m.showReport

	case key.Matches(msg, defaultKeymap.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, defaultKeymap.down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, tick := msg.(eventMsg); !tick &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case eventMsg:
		return m, m.handleEvent(session.Event(msg))

	case eventsClosedMsg:
		return m, nil

	case notifiedMsg:
		if msg.err != nil {
			slog.Warn("phase notification failed", slog.Any("error", msg.err))
			m.status = msg.err.Error()
		}

		return m, nil

	case clearBannerMsg:
		if msg.id == m.bannerID {
			m.banner = ""
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		m.help.Width = msg.Width

		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
