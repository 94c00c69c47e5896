// Package notify tells the user that a timer phase has ended
package notify

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/session"
)

var titles = map[session.Phase]string{
	session.PhaseBreak: "Break Time",
	session.PhaseWork:  "Work Time",
}

// Notifier sends a desktop notification and runs the configured command
// after every phase change.
type Notifier struct {
	notify   func(title, msg, icon string) error
	alert    func(title, msg, icon string) error
	run      func(name string, args ...string) error
	messages map[session.Phase]string
	cmd      string
	enabled  bool
	sound    bool
}

// New creates a Notifier from the config.
func New(cfg *config.Config) *Notifier {
	return &Notifier{
		notify: func(title, msg, icon string) error {
			return beeep.Notify(title, msg, icon)
		},
		alert: func(title, msg, icon string) error {
			return beeep.Alert(title, msg, icon)
		},
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		messages: map[session.Phase]string{
			session.PhaseWork:  cfg.Message(session.PhaseWork),
			session.PhaseBreak: cfg.Message(session.PhaseBreak),
		},
		cmd:     cfg.Settings.Cmd,
		enabled: cfg.Notifications.Enabled,
		sound:   cfg.Notifications.Sound,
	}
}

// PhaseChanged handles a phase change event. Other events are ignored.
func (n *Notifier) PhaseChanged(ev session.Event) error {
	if ev.Type != session.EventPhaseChange {
		return nil
	}

	var errs []error

	if n.enabled {
		send := n.notify
		if n.sound {
			send = n.alert
		}

		if err := send(titles[ev.To], n.messages[ev.To], ""); err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}
	}

	if err := n.runSessionCmd(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// runSessionCmd executes the configured command.
func (n *Notifier) runSessionCmd() error {
	if n.cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.cmd)
	if err != nil {
		return fmt.Errorf("unable to parse settings.cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	if err := n.run(cmdSlice[0], cmdSlice[1:]...); err != nil {
		return fmt.Errorf("settings.cmd failed: %w", err)
	}

	return nil
}
