package logutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false)

	l.Debug("hidden")
	l.Info("task added", slog.Uint64("id", 3))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "task added", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.InDelta(t, 3, entry["id"], 0)
}

func TestDebug(t *testing.T) {
	for v, want := range map[string]bool{"": false, "0": false, "false": false, "1": true, "yes": true} {
		t.Setenv(envDebug, v)

		assert.Equal(t, want, Debug(), "value %q", v)
	}
}
