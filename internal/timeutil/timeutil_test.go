package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/discipline/internal/apperr"
)

func TestClock(t *testing.T) {
	cases := []struct {
		want    string
		seconds int
	}{
		{"25:00", 1500},
		{"05:00", 300},
		{"00:59", 59},
		{"00:00", 0},
		{"00:00", -3},
		{"100:01", 6001},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Clock(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestParseDueRoundTrip(t *testing.T) {
	due := time.Date(2026, time.March, 4, 17, 30, 12, 987654321, time.Local)

	got, err := ParseDue(FormatDue(due))
	require.NoError(t, err)

	assert.True(t, got.Equal(due.Truncate(time.Second)), "got %v", got)
}

func TestParseDueInvalid(t *testing.T) {
	_, err := ParseDue("04/03/2026")

	assert.ErrorIs(t, err, apperr.Parse)
}

func TestFromStr(t *testing.T) {
	now := time.Date(2026, time.October, 16, 9, 15, 30, 500, time.Local)

	got, err := FromStr("", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(now.Truncate(time.Second)))

	got, err = FromStr("2026-10-20 08:00:00", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20 08:00:00", FormatDue(got))
}

func TestToKeySortsChronologically(t *testing.T) {
	east := time.FixedZone("east", 5*60*60)

	earlier := time.Date(2026, time.May, 1, 12, 0, 0, 0, east)
	later := time.Date(2026, time.May, 1, 10, 0, 0, 500, time.UTC)

	assert.Less(t, string(ToKey(earlier)), string(ToKey(later)))
	assert.Equal(t, "2026-05-01T07:00:00.000000000Z", string(ToKey(earlier)))
}
