package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/discipline/internal/session"
)

func newClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, path
}

func TestAddAndList(t *testing.T) {
	c, _ := newClient(t)

	base := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	records := []Record{
		{Phase: session.PhaseWork, StartedAt: base, EndedAt: base.Add(25 * time.Minute), Duration: 25 * time.Minute},
		{Phase: session.PhaseBreak, StartedAt: base.Add(25 * time.Minute), EndedAt: base.Add(30 * time.Minute), Duration: 5 * time.Minute},
		{Phase: session.PhaseWork, StartedAt: base.Add(24 * time.Hour), EndedAt: base.Add(24*time.Hour + 25*time.Minute), Duration: 25 * time.Minute},
	}

	// insertion order must not matter
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, c.Add(records[i]))
	}

	all, err := c.List(time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i := range records {
		assert.True(t, records[i].EndedAt.Equal(all[i].EndedAt))
		assert.Equal(t, records[i].Phase, all[i].Phase)
	}

	firstDay, err := c.List(base, base.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Len(t, firstDay, 2)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	_, path := newClient(t)

	_, err := openDB(path, 10*time.Millisecond)

	assert.True(t, IsAlreadyRunning(err))
}

func TestRecordFromEvent(t *testing.T) {
	at := time.Date(2026, time.October, 16, 9, 25, 0, 0, time.UTC)

	r := RecordFromEvent(session.Event{
		Type: session.EventPhaseChange,
		From: session.PhaseWork,
		To:   session.PhaseBreak,
		At:   at,
	}, session.DefaultDurations())

	assert.Equal(t, session.PhaseWork, r.Phase)
	assert.Equal(t, 25*time.Minute, r.Duration)
	assert.Equal(t, at.Add(-25*time.Minute), r.StartedAt)
	assert.Equal(t, at, r.EndedAt)
}
