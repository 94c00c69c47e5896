package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/discipline/internal/apperr"
	"github.com/ayoisaiah/discipline/internal/testutil"
	"github.com/ayoisaiah/discipline/internal/timeutil"
)

func writeSession(t *testing.T, dir, content string) string {
	t.Helper()

	return testutil.WriteFile(t, dir, "session.json", content)
}

func TestLoadMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    TimerState
	}{
		{
			name:    "empty object",
			content: `{}`,
			want:    TimerState{RemainingSeconds: 1500},
		},
		{
			name:    "tasks only",
			content: `{"tasks": []}`,
			want:    TimerState{RemainingSeconds: 1500},
		},
		{
			name:    "timer without phase",
			content: `{"timer_seconds": 42}`,
			want:    TimerState{RemainingSeconds: 42},
		},
		{
			name:    "phase without timer",
			content: `{"on_break": true}`,
			want:    TimerState{RemainingSeconds: 1500, OnBreak: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Load(writeSession(t, t.TempDir(), tc.content), DefaultDurations())
			require.NoError(t, err)

			assert.Equal(t, tc.want, data.Timer)
			assert.Equal(t, []Task{}, data.Tasks)
			assert.Equal(t, uint64(1), data.NextID)
		})
	}
}

func TestLoadUnversionedFile(t *testing.T) {
	content := `{
  "tasks": [
    {"task": "Write report", "due": "2026-03-04 17:30:12", "category": "Work", "completed": false},
    {"task": "Buy milk", "due": "2026-03-05 09:00:00", "category": "Errands", "completed": true}
  ],
  "timer_seconds": 120,
  "on_break": true
}`

	data, err := Load(writeSession(t, t.TempDir(), content), DefaultDurations())
	require.NoError(t, err)

	require.Len(t, data.Tasks, 2)
	assert.Equal(t, []uint64{1, 2}, ids(data.Tasks))
	assert.Equal(t, uint64(3), data.NextID)
	assert.Equal(t, "2026-03-05 09:00:00", timeutil.FormatDue(data.Tasks[1].Due))
	assert.True(t, data.Tasks[1].Completed)
	assert.Equal(t, TimerState{RemainingSeconds: 120, OnBreak: true}, data.Timer)
}

func TestLoadRepairsIDs(t *testing.T) {
	content := `{"version": 1, "tasks": [
  {"id": 7, "task": "a", "due": "2026-03-04 17:30:12", "category": "Work", "completed": false},
  {"id": 7, "task": "b", "due": "2026-03-04 17:30:12", "category": "Work", "completed": false},
  {"task": "c", "due": "2026-03-04 17:30:12", "category": "Personal", "completed": false}
], "next_id": 4}`

	data, err := Load(writeSession(t, t.TempDir(), content), DefaultDurations())
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 8, 9}, ids(data.Tasks))
	assert.Equal(t, uint64(10), data.NextID)
}

func TestLoadInvalidFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"tasks": [`},
		{"empty file", ``},
		{"bad due date", `{"tasks": [{"task": "a", "due": "tomorrow", "category": "Work"}]}`},
		{"unknown category", `{"tasks": [{"task": "a", "due": "2026-03-04 17:30:12", "category": "Chores"}]}`},
		{"negative timer", `{"timer_seconds": -5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSession(t, t.TempDir(), tc.content)

			data, err := Load(path, DefaultDurations())

			assert.ErrorIs(t, err, apperr.Parse)
			assert.Equal(t, DefaultData(DefaultDurations()), data)

			_, statErr := os.Stat(path)
			assert.ErrorIs(t, statErr, os.ErrNotExist)

			moved := corruptFiles(t, path)
			require.Len(t, moved, 1)

			b, readErr := os.ReadFile(moved[0])
			require.NoError(t, readErr)
			assert.Equal(t, tc.content, string(b))
		})
	}
}

func corruptFiles(t *testing.T, path string) []string {
	t.Helper()

	matches, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)

	return matches
}

func TestLoadKeepsEarlierCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	path := writeSession(t, dir, `{"tasks": [`)

	_, err := Load(path, DefaultDurations())
	require.ErrorIs(t, err, apperr.Parse)

	writeSession(t, dir, `not json`)

	_, err = Load(path, DefaultDurations())
	require.ErrorIs(t, err, apperr.Parse)

	assert.Len(t, corruptFiles(t, path), 2)
}

func TestLoadNewerVersionLeavesFileInPlace(t *testing.T) {
	content := `{"version": 2, "tasks": [{"id": 1, "task": "keep me", "due": "2026-03-04 17:30:12", "category": "Work"}]}`

	path := writeSession(t, t.TempDir(), content)

	data, err := Load(path, DefaultDurations())

	assert.ErrorIs(t, err, apperr.Parse)
	assert.ErrorIs(t, err, errUnsupportedVersion)
	assert.Equal(t, DefaultData(DefaultDurations()), data)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, content, string(b))
	assert.Empty(t, corruptFiles(t, path))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	require.NoError(t, Save(path, DefaultData(DefaultDurations())))
	require.NoError(t, Save(path, DefaultData(DefaultDurations())))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "session.json", entries[0].Name())
}
