package config

import "github.com/ayoisaiah/discipline/internal/apperr"

var (
	errConfigOption = apperr.New(
		apperr.KindValidation,
		"config option error",
	)

	errReadConfig = apperr.New(
		apperr.KindIO,
		"reading config file failed",
	)

	errWriteConfig = apperr.New(
		apperr.KindIO,
		"writing default config failed",
	)

	errEmptyMsg = apperr.New(
		apperr.KindValidation,
		"%s message cannot be empty",
	)

	errInvalidDuration = apperr.New(
		apperr.KindValidation,
		"%s duration must be between %v and %v",
	)

	errInvalidTickInterval = apperr.New(
		apperr.KindValidation,
		"tick interval must be between %v and %v",
	)

	errInvalidCLIDuration = apperr.New(
		apperr.KindValidation,
		"invalid %s duration",
	)
)
