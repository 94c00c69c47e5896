// Package logutil configures the structured logger
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const envDebug = "DISCIPLINE_DEBUG"

// Debug reports whether debug logging was requested through the environment.
func Debug() bool {
	v := strings.TrimSpace(os.Getenv(envDebug))

	return v != "" && v != "0" && v != "false"
}

// New returns a JSON logger that writes to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init routes the default slog logger to a rotated log file at path. The
// returned closer flushes and closes the file.
func Init(path string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	slog.SetDefault(New(w, Debug()))

	return w
}
