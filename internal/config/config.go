// Package config assembles discipline's settings from the config file and
// command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/discipline/internal/pathutil"
	"github.com/ayoisaiah/discipline/internal/session"
)

type (
	// Config holds all configuration settings
	Config struct {
		Work          PhaseConfig        `mapstructure:"work"`
		Break         PhaseConfig        `mapstructure:"break"`
		System        SystemConfig       `mapstructure:"-"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// PhaseConfig holds the settings for one timer phase. Message is shown
	// when the phase begins.
	PhaseConfig struct {
		Message  string        `mapstructure:"message"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds general timer settings
	SettingsConfig struct {
		Cmd            string        `mapstructure:"cmd"`
		DataFile       string        `mapstructure:"data_file"`
		TickInterval   time.Duration `mapstructure:"tick_interval"`
		AutoStartWork  bool          `mapstructure:"auto_start_work"`
		AutoStartBreak bool          `mapstructure:"auto_start_break"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
	}

	// SystemConfig holds file locations. It is never read from the config
	// file.
	SystemConfig struct {
		ConfigPath  string
		SessionPath string
		HistoryPath string
		LogPath     string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// Stdout receives command output.
var Stdout io.Writer = os.Stdout

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithPaths fills in file locations from the xdg directories.
func WithPaths(p *pathutil.Paths) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath:  p.ConfigFilePath(),
			SessionPath: p.SessionFilePath(),
			HistoryPath: p.HistoryFilePath(),
			LogPath:     p.LogFilePath(),
		}

		return nil
	}
}

// SessionFile returns the session file location, honouring the data_file
// setting.
func (c *Config) SessionFile() string {
	if c.Settings.DataFile != "" {
		return c.Settings.DataFile
	}

	return c.System.SessionPath
}

// Durations returns the phase lengths for the session store.
func (c *Config) Durations() session.Durations {
	return session.Durations{
		Work:  c.Work.Duration,
		Break: c.Break.Duration,
	}
}

// StoreOptions translates the timer settings into session store options.
func (c *Config) StoreOptions() []session.Option {
	return []session.Option{
		session.WithDurations(c.Durations()),
		session.WithAutoStart(c.Settings.AutoStartWork, c.Settings.AutoStartBreak),
		session.WithTickInterval(c.Settings.TickInterval),
	}
}

// Message returns the message shown when phase p begins.
func (c *Config) Message(p session.Phase) string {
	if p == session.PhaseBreak {
		return c.Break.Message
	}

	return c.Work.Message
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"work=%s break=%s tick=%s session=%s",
		c.Work.Duration,
		c.Break.Duration,
		c.Settings.TickInterval,
		c.SessionFile(),
	)
}
