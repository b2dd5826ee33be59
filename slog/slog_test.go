package slog_test

import (
	"bytes"
	"log/slog"
)

// newLogger returns a debug-level text logger writing to buf.
func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
