// Package applog opens the optional JSON log file. The terminal belongs to
// the quiz UI, so logs never go to stdout or stderr.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is a slog.Logger tagged with a per-run session ID, plus the file
// behind it.
type Logger struct {
	*slog.Logger
	SessionID string
	closer    io.Closer
}

// Open returns a logger appending JSON records to path. An empty path
// discards everything.
func Open(path string, level slog.Level) (*Logger, error) {
	id := uuid.New().String()
	if path == "" {
		return &Logger{
			Logger:    slog.New(slog.DiscardHandler).With("session_id", id),
			SessionID: id,
		}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, id, f), nil
}

// New builds a logger writing JSON to w. closer may be nil.
func New(w io.Writer, level slog.Level, sessionID string, closer io.Closer) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(h).With("session_id", sessionID),
		SessionID: sessionID,
		closer:    closer,
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
