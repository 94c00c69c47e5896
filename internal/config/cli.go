package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work           string
	Break          string
	DataFile       string
	SessionCmd     string
	DisableNotify  bool
	AutoStartWork  bool
	AutoStartBreak bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set on the command line override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:           ctx.String("work"),
			Break:          ctx.String("break"),
			DataFile:       ctx.String("data-file"),
			SessionCmd:     ctx.String("session-cmd"),
			DisableNotify:  ctx.Bool("disable-notification"),
			AutoStartWork:  ctx.Bool("auto-start-work"),
			AutoStartBreak: ctx.Bool("auto-start-break"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.DataFile != "" {
		c.Settings.DataFile = opts.DataFile
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.AutoStartWork {
		c.Settings.AutoStartWork = true
	}

	if opts.AutoStartBreak {
		c.Settings.AutoStartBreak = true
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	if opts.Work != "" {
		dur, err := parseDuration(opts.Work)
		if err != nil {
			return errInvalidCLIDuration.Fmt("work").Wrap(err)
		}

		c.Work.Duration = dur
	}

	if opts.Break != "" {
		dur, err := parseDuration(opts.Break)
		if err != nil {
			return errInvalidCLIDuration.Fmt("break").Wrap(err)
		}

		c.Break.Duration = dur
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers, which are
// taken as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}
