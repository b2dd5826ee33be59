package mock

import (
	"context"

	"github.com/fwojciec/vocanote"
)

var _ vocanote.SpeechRecognizer = (*SpeechRecognizer)(nil)

// SpeechRecognizer is a mock implementation of vocanote.SpeechRecognizer.
type SpeechRecognizer struct {
	StartFn func(ctx context.Context, opts vocanote.RecognitionOptions, h vocanote.ResultHandler) (vocanote.SpeechSession, error)
}

func (r *SpeechRecognizer) Start(ctx context.Context, opts vocanote.RecognitionOptions, h vocanote.ResultHandler) (vocanote.SpeechSession, error) {
	return r.StartFn(ctx, opts, h)
}

var _ vocanote.SpeechSession = (*SpeechSession)(nil)

// SpeechSession is a mock implementation of vocanote.SpeechSession.
type SpeechSession struct {
	StopFn func() error
	DoneFn func() <-chan struct{}
}

func (s *SpeechSession) Stop() error {
	return s.StopFn()
}

func (s *SpeechSession) Done() <-chan struct{} {
	return s.DoneFn()
}

var _ vocanote.AudioSource = (*AudioSource)(nil)

// AudioSource is a mock implementation of vocanote.AudioSource.
type AudioSource struct {
	NextFn func(ctx context.Context) (*vocanote.AudioSegment, error)
}

func (s *AudioSource) Next(ctx context.Context) (*vocanote.AudioSegment, error) {
	return s.NextFn(ctx)
}
