// Package session owns the task list and the work/break timer, and keeps
// both in sync with the session file on disk
package session

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// pomodorosPerTask is the fixed estimate used by Report. It is not derived
// from timer history.
const pomodorosPerTask = 2

// Report summarises the task list.
type Report struct {
	TotalTasks         int `json:"total_tasks"`
	CompletedTasks     int `json:"completed_tasks"`
	PomodorosCompleted int `json:"pomodoros_completed"`
}

// Option configures a Store.
type Option func(*Store)

// WithDurations sets the length of the work and break phases.
func WithDurations(d Durations) Option {
	return func(s *Store) {
		s.durations = d
	}
}

// WithAutoStart keeps the tick source running into the next phase instead of
// stopping at the phase boundary.
func WithAutoStart(work, brk bool) Option {
	return func(s *Store) {
		s.autoStartWork = work
		s.autoStartBreak = brk
	}
}

// WithTickInterval changes how often the running timer ticks.
func WithTickInterval(d time.Duration) Option {
	return func(s *Store) {
		s.interval = d
	}
}

// WithClock replaces the function used to timestamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type tickSource struct {
	stop chan struct{}
	done chan struct{}
}

// Store is the single owner of the task list and timer state. All methods
// are safe for concurrent use.
type Store struct {
	now            func() time.Time
	protect        error
	ticker         *tickSource
	subs           map[int]chan Event
	path           string
	data           SessionData
	durations      Durations
	interval       time.Duration
	nextSub        int
	mu             sync.Mutex
	autoStartWork  bool
	autoStartBreak bool
	closed         bool
}

// Open loads the session file at path and returns a store for it. The
// returned store is always usable: if the file cannot be read or parsed the
// store starts from defaults and the error is returned alongside it. When
// the file was written by a newer version, or could not be moved aside, the
// store never overwrites it and every save returns an IO error.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:      path,
		durations: DefaultDurations(),
		interval:  time.Second,
		now:       time.Now,
		subs:      make(map[int]chan Event),
	}

	for _, opt := range opts {
		opt(s)
	}

	data, err := Load(path, s.durations)
	if err != nil {
		slog.Warn(
			"session file could not be loaded, starting from defaults",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}

	// the file on disk is kept intact and every save is refused
	if protected(err) {
		s.protect = err
	}

	s.data = data

	return s, err
}

// Path returns the location of the session file.
func (s *Store) Path() string {
	return s.path
}

// Durations returns the configured phase lengths.
func (s *Store) Durations() Durations {
	return s.durations
}

// Save writes the full state to the session file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	var err error

	if s.protect != nil {
		err = errProtectedSession.Fmt(s.path).Wrap(s.protect)
	} else {
		err = Save(s.path, s.data)
	}

	if err != nil {
		slog.Error(
			"saving session failed",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
	}

	return err
}

// Data returns a copy of the full state.
func (s *Store) Data() SessionData {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.data
	d.Tasks = slices.Clone(s.data.Tasks)

	return d
}

// Tasks returns every task record, including completed ones.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.data.Tasks)
}

// Pending returns the visible task list. Completed tasks are kept in the
// records but no longer listed.
func (s *Store) Pending() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]Task, 0, len(s.data.Tasks))

	for i := range s.data.Tasks {
		if !s.data.Tasks[i].Completed {
			pending = append(pending, s.data.Tasks[i])
		}
	}

	return pending
}

// AddTask appends a new pending task and saves the store. If the save fails
// the task is still added and the returned error is an IO error.
func (s *Store) AddTask(
	text string,
	due time.Time,
	category Category,
) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, errEmptyText
	}

	if !category.Valid() {
		return Task{}, errUnknownCategory.Fmt(category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{
		ID:       s.data.NextID,
		Text:     text,
		Due:      due,
		Category: category,
	}

	s.data.NextID++
	s.data.Tasks = append(s.data.Tasks, task)

	return task, s.saveLocked()
}

func (s *Store) indexOf(id uint64) int {
	return slices.IndexFunc(s.data.Tasks, func(t Task) bool {
		return t.ID == id
	})
}

// RemoveTask deletes the task with the given id and saves the store.
func (s *Store) RemoveTask(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errTaskNotFound.Fmt(id)
	}

	s.data.Tasks = slices.Delete(s.data.Tasks, i, i+1)

	return s.saveLocked()
}

// CompleteTask marks a pending task as completed and saves the store. The
// task leaves the pending list but is still counted by Report.
func (s *Store) CompleteTask(id uint64) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.data.Tasks[i].Completed {
		return Task{}, errTaskNotFound.Fmt(id)
	}

	s.data.Tasks[i].Completed = true

	return s.data.Tasks[i], s.saveLocked()
}

// Report counts completed tasks. PomodorosCompleted is an estimate of two
// pomodoros per completed task.
func (s *Store) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{
		TotalTasks: len(s.data.Tasks),
	}

	for i := range s.data.Tasks {
		if s.data.Tasks[i].Completed {
			r.CompletedTasks++
		}
	}

	r.PomodorosCompleted = r.CompletedTasks * pomodorosPerTask

	return r
}

// Timer returns the current timer state.
func (s *Store) Timer() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Timer
}

// Running reports whether the tick source is active.
func (s *Store) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticker != nil
}

// Tick advances the timer by one second. At the end of a phase the timer
// switches to the other phase, subscribers receive an EventPhaseChange, the
// store is saved and, unless auto start is enabled for the new phase, the
// tick source is stopped.
func (s *Store) Tick() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tickLocked()
}

func (s *Store) tickLocked() TimerState {
	prev := s.data.Timer

	next, changed := prev.advance(s.durations)
	s.data.Timer = next

	if !changed {
		s.publish(Event{Type: EventTick, Timer: next})
		return next
	}

	slog.Info(
		"timer phase changed",
		slog.String("from", string(prev.Phase())),
		slog.String("to", string(next.Phase())),
	)

	halted := !s.autoStart(next.Phase()) && s.haltLocked()

	err := s.saveLocked()

	s.publish(Event{
		Type:  EventPhaseChange,
		Timer: next,
		From:  prev.Phase(),
		To:    next.Phase(),
		Err:   err,
	})

	if halted {
		s.publish(Event{Type: EventStopped, Timer: next})
	}

	return next
}

func (s *Store) autoStart(p Phase) bool {
	if p == PhaseBreak {
		return s.autoStartBreak
	}

	return s.autoStartWork
}

// StartTimer starts the periodic tick source. Calling it while the timer is
// already running has no effect.
func (s *Store) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil || s.closed {
		return
	}

	ts := &tickSource{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	s.ticker = ts

	go s.run(ts)

	s.publish(Event{Type: EventStarted, Timer: s.data.Timer})
}

func (s *Store) run(ts *tickSource) {
	defer close(ts.done)

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ts.stop:
			return
		case <-t.C:
			s.mu.Lock()

			// a stop may have raced with this tick
			if s.ticker != ts {
				s.mu.Unlock()
				return
			}

			s.tickLocked()
			s.mu.Unlock()
		}
	}
}

// StopTimer stops the tick source and saves the remaining time. Calling it
// while the timer is stopped has no effect.
func (s *Store) StopTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stopLocked() {
		return nil
	}

	return s.saveLocked()
}

func (s *Store) stopLocked() bool {
	if !s.haltLocked() {
		return false
	}

	s.publish(Event{Type: EventStopped, Timer: s.data.Timer})

	return true
}

// haltLocked stops the tick source without notifying subscribers.
func (s *Store) haltLocked() bool {
	if s.ticker == nil {
		return false
	}

	close(s.ticker.stop)
	s.ticker = nil

	return true
}

// Close stops the timer, saving its state if it was running, and ends all
// subscriptions.
func (s *Store) Close() error {
	s.mu.Lock()

	var (
		err  error
		done chan struct{}
	)

	if s.ticker != nil {
		done = s.ticker.done

		s.stopLocked()

		err = s.saveLocked()
	}

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}

	s.closed = true

	s.mu.Unlock()

	if done != nil {
		<-done
	}

	return err
}
