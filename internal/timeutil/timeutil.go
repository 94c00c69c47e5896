// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/discipline/internal/apperr"
)

// DueLayout is the layout used for due dates in the session file.
const DueLayout = "2006-01-02 15:04:05"

const secondsInAMinute = 60

// keyLayout has a fixed width so that keys sort chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

var errInvalidDue = apperr.New(apperr.KindParse, "invalid due date %q")

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// Clock formats a number of seconds as MM:SS.
func Clock(seconds int) string {
	m, s := SecsToMinsAndSecs(seconds)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDue renders t in the session file layout. Sub-second precision is
// dropped.
func FormatDue(t time.Time) string {
	return t.Format(DueLayout)
}

// ParseDue parses a due date stored in the session file. Due dates are
// interpreted in local time.
func ParseDue(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DueLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errInvalidDue.Fmt(s).Wrap(err)
	}

	return t, nil
}

// FromStr parses a user supplied due date. The session file layout is tried
// first, then natural language input such as "tomorrow 5pm" relative to now.
// An empty string yields now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.Truncate(time.Second), nil
	}

	if t, err := ParseDue(s); err == nil {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDue.Fmt(s).Wrap(err)
	}

	if dt.Time.IsZero() {
		return time.Time{}, errInvalidDue.Fmt(s)
	}

	return dt.Time.Truncate(time.Second), nil
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
