package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/session"
)

type call struct {
	kind  string
	title string
	msg   string
	args  []string
}

func fakeNotifier(cfg *config.Config, calls *[]call) *Notifier {
	n := New(cfg)

	n.notify = func(title, msg, _ string) error {
		*calls = append(*calls, call{kind: "notify", title: title, msg: msg})
		return nil
	}

	n.alert = func(title, msg, _ string) error {
		*calls = append(*calls, call{kind: "alert", title: title, msg: msg})
		return nil
	}

	n.run = func(name string, args ...string) error {
		*calls = append(*calls, call{kind: "run", title: name, args: args})
		return nil
	}

	return n
}

func testConfig() *config.Config {
	return &config.Config{
		Work:          config.PhaseConfig{Message: "Back to work!", Duration: 25 * time.Minute},
		Break:         config.PhaseConfig{Message: "Take a short break!", Duration: 5 * time.Minute},
		Notifications: config.NotificationConfig{Enabled: true},
	}
}

var toBreak = session.Event{
	Type: session.EventPhaseChange,
	From: session.PhaseWork,
	To:   session.PhaseBreak,
}

func TestPhaseChangedNotifies(t *testing.T) {
	var calls []call

	n := fakeNotifier(testConfig(), &calls)

	assert.NoError(t, n.PhaseChanged(toBreak))

	assert.Equal(t, []call{
		{kind: "notify", title: "Break Time", msg: "Take a short break!"},
	}, calls)
}

func TestPhaseChangedWithSoundAndCmd(t *testing.T) {
	var calls []call

	cfg := testConfig()
	cfg.Notifications.Sound = true
	cfg.Settings.Cmd = `say "back to it"`

	n := fakeNotifier(cfg, &calls)

	toWork := toBreak
	toWork.From, toWork.To = session.PhaseBreak, session.PhaseWork

	assert.NoError(t, n.PhaseChanged(toWork))

	assert.Equal(t, []call{
		{kind: "alert", title: "Work Time", msg: "Back to work!"},
		{kind: "run", title: "say", args: []string{"back to it"}},
	}, calls)
}

func TestPhaseChangedIgnoresOtherEvents(t *testing.T) {
	var calls []call

	n := fakeNotifier(testConfig(), &calls)

	assert.NoError(t, n.PhaseChanged(session.Event{Type: session.EventTick}))
	assert.Empty(t, calls)
}

func TestDisabledNotificationsStillRunCmd(t *testing.T) {
	var calls []call

	cfg := testConfig()
	cfg.Notifications.Enabled = false
	cfg.Settings.Cmd = "touch /tmp/done"

	n := fakeNotifier(cfg, &calls)
	n.run = func(string, ...string) error {
		return errors.New("exit status 1")
	}

	err := n.PhaseChanged(toBreak)

	assert.ErrorContains(t, err, "settings.cmd failed")
	assert.Empty(t, calls)
}

func TestUnbalancedQuotes(t *testing.T) {
	var calls []call

	cfg := testConfig()
	cfg.Notifications.Enabled = false
	cfg.Settings.Cmd = `say "oops`

	err := fakeNotifier(cfg, &calls).PhaseChanged(toBreak)

	assert.ErrorContains(t, err, "unable to parse")
}
