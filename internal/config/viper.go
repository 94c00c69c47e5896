package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/discipline/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyWorkMessage          = "work.message"
	keyBreakDuration        = "break.duration"
	keyBreakMessage         = "break.message"
	keyAutoStartWork        = "settings.auto_start_work"
	keyAutoStartBreak       = "settings.auto_start_break"
	keySessionCmd           = "settings.cmd"
	keyTickInterval         = "settings.tick_interval"
	keyDataFile             = "settings.data_file"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.twenty_four_hour"
)

const envPrefix = "DISCIPLINE"

// WithViperConfig returns an Option that loads configuration from Viper. The
// config file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults. Durations already present on c
// (from the first run prompt) take precedence over the built-in defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyWorkMessage, "Back to work!")
	v.SetDefault(keyBreakDuration, "5m")
	v.SetDefault(keyBreakMessage, "Take a short break!")
	v.SetDefault(keyAutoStartWork, false)
	v.SetDefault(keyAutoStartBreak, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTickInterval, "1s")
	v.SetDefault(keyDataFile, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)

	if c.Work.Duration != 0 {
		v.SetDefault(keyWorkDuration, c.Work.Duration.String())
	}

	if c.Break.Duration != 0 {
		v.SetDefault(keyBreakDuration, c.Break.Duration.String())
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
