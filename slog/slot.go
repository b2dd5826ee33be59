package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vocanote"
)

// Ensure LoggingSlot implements vocanote.Slot.
var _ vocanote.Slot = (*LoggingSlot)(nil)

// LoggingSlot wraps a Slot with debug logging.
type LoggingSlot struct {
	next   vocanote.Slot
	logger *slog.Logger
}

// NewLoggingSlot creates a new LoggingSlot.
func NewLoggingSlot(next vocanote.Slot, logger *slog.Logger) *LoggingSlot {
	return &LoggingSlot{next: next, logger: logger}
}

// Read delegates to the wrapped slot and logs the operation.
func (s *LoggingSlot) Read(ctx context.Context) (value string, ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("slot read",
			"found", ok,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx)
}

// Write delegates to the wrapped slot and logs the operation.
func (s *LoggingSlot) Write(ctx context.Context, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("slot write",
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, value)
}
