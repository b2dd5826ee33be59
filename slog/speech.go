package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vocanote"
)

// Ensure LoggingRecognizer implements vocanote.SpeechRecognizer.
var _ vocanote.SpeechRecognizer = (*LoggingRecognizer)(nil)

// LoggingRecognizer wraps a SpeechRecognizer with logging of session
// lifecycle and recognition errors.
type LoggingRecognizer struct {
	next   vocanote.SpeechRecognizer
	logger *slog.Logger
}

// NewLoggingRecognizer creates a new LoggingRecognizer.
func NewLoggingRecognizer(next vocanote.SpeechRecognizer, logger *slog.Logger) *LoggingRecognizer {
	return &LoggingRecognizer{next: next, logger: logger}
}

// Start delegates to the wrapped recognizer and logs the operation.
func (r *LoggingRecognizer) Start(ctx context.Context, opts vocanote.RecognitionOptions, h vocanote.ResultHandler) (session vocanote.SpeechSession, err error) {
	defer func(begin time.Time) {
		r.logger.Info("dictation start",
			"lang", opts.Lang,
			"continuous", opts.Continuous,
			"interim", opts.InterimResults,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	session, err = r.next.Start(ctx, opts, &loggingHandler{next: h, logger: r.logger})
	if err != nil {
		return nil, err
	}
	return &loggingSession{next: session, logger: r.logger, begin: time.Now()}, nil
}

type loggingHandler struct {
	next   vocanote.ResultHandler
	logger *slog.Logger
}

func (h *loggingHandler) OnResult(t vocanote.Transcript) {
	h.logger.Debug("dictation result", "results", len(t.Results))
	h.next.OnResult(t)
}

func (h *loggingHandler) OnError(err error) {
	h.logger.Warn("dictation error", "err", err)
	h.next.OnError(err)
}

func (h *loggingHandler) OnEnd() {
	h.logger.Debug("dictation end")
	h.next.OnEnd()
}

type loggingSession struct {
	next   vocanote.SpeechSession
	logger *slog.Logger
	begin  time.Time
}

func (s *loggingSession) Stop() (err error) {
	defer func() {
		s.logger.Info("dictation stop",
			"elapsed", time.Since(s.begin),
			"err", err,
		)
	}()
	return s.next.Stop()
}

func (s *loggingSession) Done() <-chan struct{} {
	return s.next.Done()
}
