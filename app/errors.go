package app

import "github.com/ayoisaiah/discipline/internal/apperr"

var (
	errInvalidID = apperr.New(
		apperr.KindValidation,
		"invalid task id %q: expected a positive number",
	)

	errMissingArg = apperr.New(
		apperr.KindValidation,
		"missing argument: %s",
	)

	errInvalidSort = apperr.New(
		apperr.KindValidation,
		"invalid sort order %q: must be one of position, due, text",
	)
)
