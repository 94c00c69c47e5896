// Package history records completed timer phases in a BoltDB file. Holding
// the database open also marks discipline as running, since Bolt allows a
// single writer process.
package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/discipline/internal/apperr"
	"github.com/ayoisaiah/discipline/internal/osutil"
	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
)

const phasesBucket = "phases"

var (
	errAlreadyRunning = apperr.New(
		apperr.KindIO,
		"is discipline already running? Only one instance can be active at a time",
	)

	errOpenHistory = apperr.New(
		apperr.KindIO,
		"opening history database failed",
	)

	errCorruptRecord = apperr.New(
		apperr.KindParse,
		"history record %s is corrupt",
	)
)

// Record is a completed timer phase.
type Record struct {
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Phase     session.Phase `json:"phase"`
	Duration  time.Duration `json:"duration"`
}

// DB is the history storage interface.
type DB interface {
	// Add stores a record keyed by its end time
	Add(r Record) error
	// List returns records that ended within [since, until], oldest first
	List(since, until time.Time) ([]Record, error)
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// IsAlreadyRunning reports whether err was caused by another process
// holding the history database.
func IsAlreadyRunning(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}

// openDB creates or opens a database and locks it.
func openDB(path string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenHistory.Wrap(err)
	}

	return db, nil
}

// NewClient opens the history database at path, creating it if needed.
func NewClient(path string) (*Client, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, errOpenHistory.Wrap(err)
	}

	db, err := openDB(path, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(phasesBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenHistory.Wrap(err)
	}

	return &Client{
		db,
	}, nil
}

// Add stores r. A record with the same end time is overwritten.
func (c *Client) Add(r Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(phasesBucket)).Put(timeutil.ToKey(r.EndedAt), value)
	})
}

// List returns the records that ended between since and until inclusive.
// A zero until means no upper bound.
func (c *Client) List(since, until time.Time) ([]Record, error) {
	var records []Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(phasesBucket)).Cursor()

		from := timeutil.ToKey(since)
		to := timeutil.ToKey(until)

		for k, v := cur.Seek(from); k != nil; k, v = cur.Next() {
			if !until.IsZero() && bytes.Compare(k, to) > 0 {
				break
			}

			var r Record

			if err := json.Unmarshal(v, &r); err != nil {
				return errCorruptRecord.Fmt(k).Wrap(err)
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

// RecordFromEvent converts a phase change into the record of the phase that
// just ended. StartedAt assumes the phase ran without pauses.
func RecordFromEvent(ev session.Event, d session.Durations) Record {
	length := time.Duration(d.Seconds(ev.From)) * time.Second

	return Record{
		Phase:     ev.From,
		StartedAt: ev.At.Add(-length),
		EndedAt:   ev.At,
		Duration:  length,
	}
}
