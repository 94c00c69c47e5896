package session

import "time"

// EventType identifies what happened to the store.
type EventType string

const (
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventStarted     EventType = "started"
	EventStopped     EventType = "stopped"
)

// Event is delivered to subscribers whenever the timer changes.
type Event struct {
	At    time.Time
	Type  EventType
	From  Phase
	To    Phase
	Timer TimerState

	// Err is set when a phase change could not be saved.
	Err error
}

const eventBuffer = 64

// Subscribe returns a channel of store events and a function that ends the
// subscription. Sends never block. A subscriber that falls behind misses tick
// events; any other event evicts the oldest queued event instead.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, eventBuffer)

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}

	return ch, cancel
}

// publish must be called with s.mu held.
func (s *Store) publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = s.now()
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
			continue
		default:
		}

		if ev.Type == EventTick {
			continue
		}

		select {
		case <-ch:
		default:
		}

		select {
		case ch <- ev:
		default:
		}
	}
}
