package session

import "github.com/ayoisaiah/discipline/internal/apperr"

var (
	errEmptyText = apperr.New(
		apperr.KindValidation,
		"task text cannot be empty",
	)

	errUnknownCategory = apperr.New(
		apperr.KindValidation,
		"unknown category %q: must be one of Work, Personal, Errands",
	)

	errTaskNotFound = apperr.New(
		apperr.KindNotFound,
		"no pending task with id %d",
	)

	errReadSession = apperr.New(
		apperr.KindIO,
		"reading session file failed",
	)

	errWriteSession = apperr.New(
		apperr.KindIO,
		"saving session failed, changes were not durably saved",
	)

	errQuarantineSession = apperr.New(
		apperr.KindIO,
		"unreadable session file %s could not be moved aside",
	)

	errProtectedSession = apperr.New(
		apperr.KindIO,
		"refusing to overwrite %s, changes were not durably saved",
	)

	errMalformedSession = apperr.New(
		apperr.KindParse,
		"session file is malformed",
	)

	errUnsupportedVersion = apperr.New(
		apperr.KindParse,
		"session file version %d is newer than supported version %d",
	)

	errNegativeTimer = apperr.New(
		apperr.KindParse,
		"timer_seconds must not be negative, got %d",
	)
)
