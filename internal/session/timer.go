package session

import "time"

// Phase is one of the two timer phases.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Durations holds the length of each phase.
type Durations struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultDurations returns the standard Pomodoro lengths.
func DefaultDurations() Durations {
	return Durations{
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	}
}

// Seconds returns the length of phase p in whole seconds.
func (d Durations) Seconds(p Phase) int {
	if p == PhaseBreak {
		return int(d.Break / time.Second)
	}

	return int(d.Work / time.Second)
}

// TimerState is the countdown for the current phase.
type TimerState struct {
	RemainingSeconds int  `json:"remaining_seconds"`
	OnBreak          bool `json:"on_break"`
}

// Phase returns the phase the timer is in.
func (t TimerState) Phase() Phase {
	if t.OnBreak {
		return PhaseBreak
	}

	return PhaseWork
}

// advance moves the countdown forward by one second. When the counter reaches
// zero the phase flips and the counter is reset to the length of the new
// phase.
func (t TimerState) advance(d Durations) (next TimerState, changed bool) {
	next = t

	if next.RemainingSeconds > 0 {
		next.RemainingSeconds--
	}

	if next.RemainingSeconds > 0 {
		return next, false
	}

	next.OnBreak = !next.OnBreak
	next.RemainingSeconds = d.Seconds(next.Phase())

	return next, true
}
