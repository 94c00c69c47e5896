package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickCountsDown(t *testing.T) {
	s := newStore(t)

	got := s.Tick()

	assert.Equal(t, TimerState{RemainingSeconds: 1499}, got)
	assert.Equal(t, got, s.Timer())
}

func TestTickPhaseTransitions(t *testing.T) {
	s := newStore(t)

	for range 1499 {
		s.Tick()
	}

	assert.Equal(t, TimerState{RemainingSeconds: 1, OnBreak: false}, s.Timer())

	got := s.Tick()
	assert.Equal(t, TimerState{RemainingSeconds: 300, OnBreak: true}, got)

	for range 300 {
		got = s.Tick()
	}

	assert.Equal(t, TimerState{RemainingSeconds: 1500, OnBreak: false}, got)
}

func TestTickAtZeroTransitionsImmediately(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(writeSession(t, dir, `{"timer_seconds": 0, "on_break": true}`))
	require.NoError(t, err)

	assert.Equal(t, TimerState{RemainingSeconds: 1500}, s.Tick())
}

func TestTickUsesConfiguredDurations(t *testing.T) {
	s := newStore(t, WithDurations(Durations{Work: 3 * time.Second, Break: 2 * time.Second}))

	assert.Equal(t, 3, s.Timer().RemainingSeconds)

	s.Tick()
	s.Tick()

	assert.Equal(t, TimerState{RemainingSeconds: 2, OnBreak: true}, s.Tick())
}

func TestPhaseChangeIsSaved(t *testing.T) {
	s := newStore(t, WithDurations(Durations{Work: time.Second, Break: time.Second}))

	s.Tick()

	data, err := Load(s.Path(), s.Durations())
	require.NoError(t, err)

	assert.Equal(t, TimerState{RemainingSeconds: 1, OnBreak: true}, data.Timer)
}

func TestPhaseChangeEvent(t *testing.T) {
	s := newStore(t, WithDurations(Durations{Work: 2 * time.Second, Break: time.Second}))

	events, cancel := s.Subscribe()
	defer cancel()

	s.Tick()
	s.Tick()

	tick := <-events
	assert.Equal(t, EventTick, tick.Type)
	assert.Equal(t, 1, tick.Timer.RemainingSeconds)

	change := <-events
	assert.Equal(t, EventPhaseChange, change.Type)
	assert.Equal(t, PhaseWork, change.From)
	assert.Equal(t, PhaseBreak, change.To)
	assert.NoError(t, change.Err)
	assert.False(t, change.At.IsZero())

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %v: the timer was not running", ev.Type)
	default:
	}
}

func TestPhaseChangeSurvivesFullBuffer(t *testing.T) {
	s := newStore(t, WithDurations(Durations{Work: 100 * time.Second, Break: time.Second}))

	events, cancel := s.Subscribe()
	defer cancel()

	for range 100 {
		s.Tick()
	}

	var last Event

	for range eventBuffer {
		last = <-events
	}

	assert.Equal(t, EventPhaseChange, last.Type)
	assert.Equal(t, PhaseBreak, last.To)

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %v", ev.Type)
	default:
	}
}

func TestStartStopIdempotent(t *testing.T) {
	s := newStore(t, WithTickInterval(time.Hour))

	events, cancel := s.Subscribe()
	defer cancel()

	s.StartTimer()
	s.StartTimer()

	assert.True(t, s.Running())

	require.NoError(t, s.StopTimer())
	require.NoError(t, s.StopTimer())

	assert.False(t, s.Running())

	assert.Equal(t, EventStarted, (<-events).Type)
	assert.Equal(t, EventStopped, (<-events).Type)

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %v", ev.Type)
	default:
	}
}

func TestStopSavesRemaining(t *testing.T) {
	s := newStore(t, WithTickInterval(time.Hour))

	s.StartTimer()
	s.Tick()
	require.NoError(t, s.StopTimer())

	data, err := Load(s.Path(), s.Durations())
	require.NoError(t, err)

	assert.Equal(t, 1499, data.Timer.RemainingSeconds)
}

func nextEvent(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()

	timeout := time.After(5 * time.Second)

	for {
		select {
		case ev := <-events:
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", want)
		}
	}
}

func TestTickSourceDrivesTimer(t *testing.T) {
	s := newStore(
		t,
		WithTickInterval(time.Millisecond),
		WithDurations(Durations{Work: 3 * time.Second, Break: time.Hour}),
	)

	events, cancel := s.Subscribe()
	defer cancel()

	s.StartTimer()

	change := nextEvent(t, events, EventPhaseChange)
	assert.Equal(t, PhaseBreak, change.To)

	stopped := nextEvent(t, events, EventStopped)
	assert.Equal(t, TimerState{RemainingSeconds: 3600, OnBreak: true}, stopped.Timer)

	assert.False(t, s.Running(), "the timer stops at the end of each phase")
}

func TestAutoStartKeepsRunning(t *testing.T) {
	s := newStore(
		t,
		WithTickInterval(time.Millisecond),
		WithDurations(Durations{Work: 2 * time.Second, Break: time.Hour}),
		WithAutoStart(false, true),
	)

	events, cancel := s.Subscribe()
	defer cancel()

	s.StartTimer()

	nextEvent(t, events, EventPhaseChange)

	assert.True(t, s.Running())

	require.NoError(t, s.StopTimer())
}

func TestCloseEndsSubscriptions(t *testing.T) {
	path := writeSession(t, t.TempDir(), `{}`)

	s, err := Open(path, WithTickInterval(time.Millisecond))
	require.NoError(t, err)

	events, cancel := s.Subscribe()

	s.StartTimer()
	require.NoError(t, s.Close())

	for range events {
	}

	cancel()

	assert.False(t, s.Running())

	s.StartTimer()
	assert.False(t, s.Running(), "a closed store cannot be restarted")
}
