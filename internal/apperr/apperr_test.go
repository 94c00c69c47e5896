package apperr_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/discipline/internal/apperr"
)

var errTaskMissing = apperr.New(apperr.KindNotFound, "task %d not found")

func TestIsMatchesKind(t *testing.T) {
	err := errTaskMissing.Fmt(4)

	assert.ErrorIs(t, err, apperr.NotFound)
	assert.ErrorIs(t, err, errTaskMissing)
	assert.NotErrorIs(t, err, apperr.Validation)
	assert.Equal(t, "task 4 not found", err.Error())
}

func TestTemplatesDoNotCrossMatch(t *testing.T) {
	other := apperr.New(apperr.KindNotFound, "selection is empty")

	assert.NotErrorIs(t, errTaskMissing.Fmt(1), other)
}

func TestWrapKeepsCause(t *testing.T) {
	tmpl := apperr.New(apperr.KindIO, "saving session failed")

	err := tmpl.Wrap(fs.ErrPermission)

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.ErrorIs(t, err, apperr.IO)
	assert.ErrorIs(t, err, tmpl)
	assert.Equal(t, "saving session failed: permission denied", err.Error())

	var appErr *apperr.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindIO, appErr.Kind)
}
