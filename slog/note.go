package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vocanote"
)

// Ensure LoggingNoteService implements vocanote.NoteService.
var _ vocanote.NoteService = (*LoggingNoteService)(nil)

// LoggingNoteService wraps a NoteService with logging.
type LoggingNoteService struct {
	next   vocanote.NoteService
	logger *slog.Logger
}

// NewLoggingNoteService creates a new LoggingNoteService.
func NewLoggingNoteService(next vocanote.NoteService, logger *slog.Logger) *LoggingNoteService {
	return &LoggingNoteService{next: next, logger: logger}
}

// Notes delegates to the wrapped service and logs the operation.
func (s *LoggingNoteService) Notes(ctx context.Context) (notes []*vocanote.Note, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list notes",
			"count", len(notes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Notes(ctx)
}

// CreateNote delegates to the wrapped service and logs the operation.
func (s *LoggingNoteService) CreateNote(ctx context.Context, content string) (note *vocanote.Note, err error) {
	defer func(begin time.Time) {
		var id string
		if note != nil {
			id = note.ID
		}
		s.logger.Info("create note",
			"id", id,
			"length", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateNote(ctx, content)
}

// DeleteNote delegates to the wrapped service and logs the operation.
func (s *LoggingNoteService) DeleteNote(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete note",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteNote(ctx, id)
}
