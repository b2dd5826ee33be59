// Package gemini provides speech recognition using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fwojciec/vocanote"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// DefaultModel is the model used for transcription.
const DefaultModel = "gemini-2.5-flash"

// ContentGenerator generates content from a prompt.
// *genai.Models satisfies this interface.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure Recognizer implements vocanote.SpeechRecognizer at compile time.
var _ vocanote.SpeechRecognizer = (*Recognizer)(nil)

// Recognizer implements vocanote.SpeechRecognizer by transcribing audio
// segments with Gemini as they arrive from an AudioSource.
type Recognizer struct {
	// Attempts is the number of tries per segment.
	Attempts uint

	// RetryDelay is the base delay between tries.
	RetryDelay time.Duration

	gen    ContentGenerator
	source vocanote.AudioSource
	model  string
}

// NewRecognizer creates a new Recognizer.
func NewRecognizer(gen ContentGenerator, source vocanote.AudioSource, model string) *Recognizer {
	if model == "" {
		model = DefaultModel
	}
	return &Recognizer{
		Attempts:   3,
		RetryDelay: 500 * time.Millisecond,
		gen:        gen,
		source:     source,
		model:      model,
	}
}

// Start begins transcribing the audio source in the background.
func (r *Recognizer) Start(ctx context.Context, opts vocanote.RecognitionOptions, h vocanote.ResultHandler) (vocanote.SpeechSession, error) {
	if r.gen == nil || r.source == nil {
		return nil, vocanote.Errorf(vocanote.EUNSUPPORTED, "gemini recognizer is not configured")
	}
	if h == nil {
		return nil, vocanote.Errorf(vocanote.EINVALID, "result handler required")
	}
	if opts.Lang == "" {
		return nil, vocanote.Errorf(vocanote.EINVALID, "recognition language required")
	}

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	s := &session{cancel: cancel, g: g, done: make(chan struct{})}

	g.Go(func() error {
		defer close(s.done)
		defer h.OnEnd()
		r.listen(ctx, opts, h)
		return nil
	})

	return s, nil
}

// listen pulls segments until the source is exhausted or ctx is done.
func (r *Recognizer) listen(ctx context.Context, opts vocanote.RecognitionOptions, h vocanote.ResultHandler) {
	var transcript vocanote.Transcript

	for {
		seg, err := r.source.Next(ctx)
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.OnError(err)
			if vocanote.ErrorCode(err) == vocanote.EINVALID {
				continue
			}
			break
		}

		alts, err := r.transcribe(ctx, seg, opts)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			h.OnError(fmt.Errorf("transcribe %s: %w", seg.Name, err))
			continue
		}

		if len(alts) > 0 {
			if len(transcript.Results) > 0 {
				for i := range alts {
					alts[i] = " " + alts[i]
				}
			}
			transcript.Results = append(transcript.Results, vocanote.RecognitionResult{Alternatives: alts, Final: true})
			if opts.InterimResults {
				h.OnResult(copyTranscript(transcript))
			}
		}

		if !opts.Continuous {
			break
		}
	}

	if !opts.InterimResults && len(transcript.Results) > 0 {
		h.OnResult(copyTranscript(transcript))
	}
}

// transcribe returns the non-empty candidate transcriptions of seg.
func (r *Recognizer) transcribe(ctx context.Context, seg *vocanote.AudioSegment, opts vocanote.RecognitionOptions) ([]string, error) {
	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: "Transcribe this recording."},
			{InlineData: &genai.Blob{MIMEType: seg.MIMEType, Data: seg.Data}},
		},
	}}
	config := BuildConfig(opts)

	result, err := retry.DoWithData(
		func() (*genai.GenerateContentResponse, error) {
			return r.gen.GenerateContent(ctx, r.model, contents, config)
		},
		retry.Context(ctx),
		retry.Attempts(r.Attempts),
		retry.Delay(r.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return vocanote.ErrorCode(err) != vocanote.EINVALID
		}),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, vocanote.Errorf(vocanote.EINTERNAL, "gemini returned nil result")
	}

	var alts []string
	for _, c := range result.Candidates {
		if text := candidateText(c); text != "" {
			alts = append(alts, text)
		}
	}
	return alts, nil
}

// BuildConfig returns the GenerateContentConfig for transcription calls.
func BuildConfig(opts vocanote.RecognitionOptions) *genai.GenerateContentConfig {
	temp := float32(0)
	candidates := opts.MaxAlternatives
	if candidates < 1 {
		candidates = 1
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: BuildInstruction(opts.Lang),
			}},
		},
		Temperature:    &temp,
		CandidateCount: int32(candidates),
	}
}

// BuildInstruction returns the system instruction for a spoken language.
func BuildInstruction(lang string) string {
	return "You transcribe dictated notes. The speaker uses the language " + lang +
		". Reply with the verbatim transcript only, in that language, without commentary. " +
		"Reply with an empty message if the recording contains no speech."
}

func candidateText(c *genai.Candidate) string {
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

func copyTranscript(t vocanote.Transcript) vocanote.Transcript {
	results := make([]vocanote.RecognitionResult, len(t.Results))
	copy(results, t.Results)
	return vocanote.Transcript{Results: results}
}

// session is a running transcription.
type session struct {
	cancel context.CancelFunc
	g      *errgroup.Group
	done   chan struct{}

	once sync.Once
	err  error
}

// Stop cancels the session and waits for the listener to return.
func (s *session) Stop() error {
	s.once.Do(func() {
		s.cancel()
		s.err = s.g.Wait()
	})
	return s.err
}

// Done is closed when the listener has returned.
func (s *session) Done() <-chan struct{} {
	return s.done
}
