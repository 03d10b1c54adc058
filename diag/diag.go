// Package diag provides the optional diagnostic log sink. The game never
// depends on it working: when the log file cannot be opened, callers get a
// logger that discards everything.
package diag

import (
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a structured logger writing JSON lines to path, plus a close
// function. An empty path or any setup failure yields a discard logger and
// a no-op close.
func New(path string) (*slog.Logger, func()) {
	if path == "" {
		return Discard(), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Discard(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return Discard(), func() {}
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// DefaultPath is where the game writes its diagnostic log.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".serpent", "serpent.log")
}
