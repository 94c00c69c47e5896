package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/discipline/internal/osutil"
	"github.com/ayoisaiah/discipline/internal/timeutil"
)

// fileVersion is written to every session file. Files without a version are
// treated as version 0 (files written before versioning).
const fileVersion = 1

const filePerm fs.FileMode = 0o600

const corruptSuffixLayout = "20060102T150405.000000000"

// SessionData is the complete persisted state of the store.
type SessionData struct {
	Tasks  []Task     `json:"tasks"`
	Timer  TimerState `json:"timer"`
	NextID uint64     `json:"next_id"`
}

// DefaultData returns the state used when no session file exists.
func DefaultData(d Durations) SessionData {
	return SessionData{
		Tasks: []Task{},
		Timer: TimerState{
			RemainingSeconds: d.Seconds(PhaseWork),
		},
		NextID: 1,
	}
}

type fileTask struct {
	ID        uint64 `json:"id,omitempty"`
	Text      string `json:"task"`
	Due       string `json:"due"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

type fileData struct {
	TimerSeconds *int       `json:"timer_seconds,omitempty"`
	OnBreak      *bool      `json:"on_break,omitempty"`
	Tasks        []fileTask `json:"tasks"`
	Version      int        `json:"version"`
	NextID       uint64     `json:"next_id,omitempty"`
}

// fileOut is the layout written by encode. Keys appear in field order.
type fileOut struct {
	Version      int        `json:"version"`
	Tasks        []fileTask `json:"tasks"`
	TimerSeconds int        `json:"timer_seconds"`
	OnBreak      bool       `json:"on_break"`
	NextID       uint64     `json:"next_id"`
}

func encode(data SessionData) ([]byte, error) {
	out := fileOut{
		Version:      fileVersion,
		Tasks:        make([]fileTask, len(data.Tasks)),
		TimerSeconds: data.Timer.RemainingSeconds,
		OnBreak:      data.Timer.OnBreak,
		NextID:       data.NextID,
	}

	for i := range data.Tasks {
		t := data.Tasks[i]

		out.Tasks[i] = fileTask{
			ID:        t.ID,
			Text:      t.Text,
			Due:       timeutil.FormatDue(t.Due),
			Category:  string(t.Category),
			Completed: t.Completed,
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}

func decode(b []byte, d Durations) (SessionData, error) {
	var in fileData

	if err := json.Unmarshal(b, &in); err != nil {
		return SessionData{}, errMalformedSession.Wrap(err)
	}

	if in.Version > fileVersion {
		return SessionData{}, errUnsupportedVersion.Fmt(in.Version, fileVersion)
	}

	data := DefaultData(d)

	if in.TimerSeconds != nil {
		if *in.TimerSeconds < 0 {
			return SessionData{}, errNegativeTimer.Fmt(*in.TimerSeconds)
		}

		data.Timer.RemainingSeconds = *in.TimerSeconds
	}

	if in.OnBreak != nil {
		data.Timer.OnBreak = *in.OnBreak
	}

	seen := make(map[uint64]bool, len(in.Tasks))
	maxID := uint64(0)

	for i := range in.Tasks {
		ft := in.Tasks[i]

		due, err := timeutil.ParseDue(ft.Due)
		if err != nil {
			return SessionData{}, err
		}

		category := Category(ft.Category)
		if !category.Valid() {
			return SessionData{}, errMalformedSession.Wrap(
				errUnknownCategory.Fmt(ft.Category),
			)
		}

		id := ft.ID
		if seen[id] {
			id = 0
		}

		if id != 0 {
			seen[id] = true
			maxID = max(maxID, id)
		}

		data.Tasks = append(data.Tasks, Task{
			ID:        id,
			Text:      ft.Text,
			Due:       due,
			Category:  category,
			Completed: ft.Completed,
		})
	}

	data.NextID = max(in.NextID, maxID+1, 1)

	// Tasks from files written before ids existed are numbered by position.
	for i := range data.Tasks {
		if data.Tasks[i].ID == 0 {
			data.Tasks[i].ID = data.NextID
			data.NextID++
		}
	}

	return data, nil
}

// quarantine moves an unreadable session file to a timestamped
// path+".corrupt-*" name so that earlier copies are never replaced.
func quarantine(path string) error {
	dst := path + ".corrupt-" + time.Now().Format(corruptSuffixLayout)

	if err := os.Rename(path, dst); err != nil {
		slog.Warn(
			"moving unreadable session file aside failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errQuarantineSession.Fmt(path).Wrap(err)
	}

	slog.Warn(
		"unreadable session file moved aside",
		slog.String("path", path),
		slog.String("moved_to", dst),
	)

	return nil
}

// Load reads the session file at path. A missing file yields the defaults
// without error. On any other failure the defaults are returned together
// with an IO or parse error. A file that cannot be parsed is moved aside so
// that the next save does not destroy it. A file written by a newer version
// is left where it is.
func Load(path string, d Durations) (SessionData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultData(d), nil
		}

		return DefaultData(d), errReadSession.Wrap(err)
	}

	data, err := decode(b, d)
	if err == nil {
		return data, nil
	}

	if errors.Is(err, errUnsupportedVersion) {
		return DefaultData(d), err
	}

	if qerr := quarantine(path); qerr != nil {
		return DefaultData(d), errors.Join(err, qerr)
	}

	return DefaultData(d), err
}

// protected reports whether a load error means the file on disk must not be
// overwritten.
func protected(err error) bool {
	return errors.Is(err, errUnsupportedVersion) ||
		errors.Is(err, errQuarantineSession)
}

// writeFile replaces path with b by writing to a temporary file in the same
// directory and renaming it into place.
func writeFile(path string, b []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return err
	}

	tmp := f.Name()

	defer func() {
		_ = os.Remove(tmp)
	}()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp, filePerm); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Save writes data to path.
func Save(path string, data SessionData) error {
	b, err := encode(data)
	if err != nil {
		return errWriteSession.Wrap(err)
	}

	if err := writeFile(path, b); err != nil {
		return errWriteSession.Wrap(err)
	}

	return nil
}
