package config

import (
	"strings"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minPhaseDuration = 1 * time.Second
	maxPhaseDuration = 720 * time.Minute // 12 hours

	minTickInterval = 1 * time.Millisecond
	maxTickInterval = 1 * time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validatePhase(c.Work, "work"); err != nil {
		return err
	}

	if err := validatePhase(c.Break, "break"); err != nil {
		return err
	}

	if c.Settings.TickInterval < minTickInterval ||
		c.Settings.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(minTickInterval, maxTickInterval)
	}

	return nil
}

// validatePhase validates an individual PhaseConfig.
func validatePhase(pc PhaseConfig, name string) error {
	// the timer counts whole seconds
	if pc.Duration < minPhaseDuration || pc.Duration > maxPhaseDuration ||
		pc.Duration%time.Second != 0 {
		return errInvalidDuration.Fmt(
			name,
			minPhaseDuration,
			maxPhaseDuration,
		)
	}

	if strings.TrimSpace(pc.Message) == "" {
		return errEmptyMsg.Fmt(name)
	}

	return nil
}
