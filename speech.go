package vocanote

import (
	"context"
	"strings"
)

// RecognitionOptions configure a dictation session.
type RecognitionOptions struct {
	// Lang is the BCP 47 tag of the spoken language.
	Lang string

	// Continuous keeps listening after the first result.
	Continuous bool

	// InterimResults delivers the accumulated transcript as it grows
	// rather than only once listening ends.
	InterimResults bool

	// MaxAlternatives is the number of alternatives requested per result.
	MaxAlternatives int
}

// DefaultRecognitionOptions returns the options used for note dictation.
func DefaultRecognitionOptions() RecognitionOptions {
	return RecognitionOptions{
		Lang:            "pt-BR",
		Continuous:      true,
		InterimResults:  true,
		MaxAlternatives: 1,
	}
}

// RecognitionResult is one recognized segment of speech.
type RecognitionResult struct {
	// Alternatives holds candidate transcriptions, most likely first.
	Alternatives []string

	// Final is false while the segment may still change.
	Final bool
}

// Transcript is every result recognized so far in a session.
type Transcript struct {
	Results []RecognitionResult
}

// Text concatenates the most likely alternative of each result.
func (t Transcript) Text() string {
	var sb strings.Builder
	for _, r := range t.Results {
		if len(r.Alternatives) > 0 {
			sb.WriteString(r.Alternatives[0])
		}
	}
	return sb.String()
}

// ResultHandler receives events from a dictation session.
// Methods are called from the session's goroutine.
type ResultHandler interface {
	// OnResult is called with the accumulated transcript so far.
	OnResult(t Transcript)

	// OnError reports a recognition failure. The session keeps running.
	OnError(err error)

	// OnEnd is called once when the session stops producing results.
	OnEnd()
}

// SpeechRecognizer converts live audio into text.
type SpeechRecognizer interface {
	// Start begins a dictation session.
	// Returns EUNSUPPORTED if speech recognition is unavailable.
	Start(ctx context.Context, opts RecognitionOptions, h ResultHandler) (SpeechSession, error)
}

// SpeechSession is an active dictation session.
type SpeechSession interface {
	// Stop ends the session and waits for it to finish.
	// Calling Stop more than once is safe.
	Stop() error

	// Done is closed once the session has ended.
	Done() <-chan struct{}
}

// Ensure UnavailableRecognizer implements SpeechRecognizer at compile time.
var _ SpeechRecognizer = UnavailableRecognizer{}

// UnavailableRecognizer is used when no speech capability is configured.
type UnavailableRecognizer struct{}

// Start always fails with EUNSUPPORTED.
func (UnavailableRecognizer) Start(context.Context, RecognitionOptions, ResultHandler) (SpeechSession, error) {
	return nil, Errorf(EUNSUPPORTED, "speech recognition is not available")
}

// AudioSegment is a chunk of recorded audio.
type AudioSegment struct {
	Name     string
	Data     []byte
	MIMEType string
}

// AudioSource yields recorded audio segment by segment.
type AudioSource interface {
	// Next returns the next segment. Returns io.EOF once exhausted.
	Next(ctx context.Context) (*AudioSegment, error)
}
