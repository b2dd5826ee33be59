// Package compose implements the new-note flow: the user picks typing or
// dictation, edits the content, and commits it as a note.
package compose

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/vocanote"
)

// State is the composer's current mode.
type State int

// Composer states.
const (
	// StateIdle shows the onboarding prompt. Content is empty.
	StateIdle State = iota

	// StateEditing shows the editable content.
	StateEditing

	// StateRecording shows the content while dictation replaces it.
	StateRecording
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateRecording:
		return "recording"
	}
	return "unknown"
}

// Composer is the new-note state machine. It owns at most one dictation
// session at a time. Methods are safe for concurrent use; recognizer
// events arrive on the session's goroutine.
type Composer struct {
	// Options configure every dictation session.
	Options vocanote.RecognitionOptions

	// OnChange, if set, is called with the new content whenever dictation
	// replaces it. It is called without the composer's lock held.
	OnChange func(content string)

	notes      vocanote.NoteService
	recognizer vocanote.SpeechRecognizer
	notifier   vocanote.Notifier
	logger     *slog.Logger

	mu      sync.Mutex
	state   State
	content string
	session vocanote.SpeechSession
	gen     uint64 // incremented whenever the current session is abandoned
}

// New creates an idle Composer.
func New(notes vocanote.NoteService, recognizer vocanote.SpeechRecognizer, notifier vocanote.Notifier, logger *slog.Logger) *Composer {
	if recognizer == nil {
		recognizer = vocanote.UnavailableRecognizer{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Composer{
		Options:    vocanote.DefaultRecognitionOptions(),
		notes:      notes,
		recognizer: recognizer,
		notifier:   notifier,
		logger:     logger,
	}
}

// State returns the current state.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Content returns the current content.
func (c *Composer) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// ShowOnboarding reports whether the onboarding prompt is displayed.
func (c *Composer) ShowOnboarding() bool {
	return c.State() == StateIdle
}

// Recording reports whether dictation is active.
func (c *Composer) Recording() bool {
	return c.State() == StateRecording
}

// Done returns a channel closed when the active dictation session ends.
// Without an active session the returned channel is already closed.
func (c *Composer) Done() <-chan struct{} {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session == nil {
		return closed
	}
	return session.Done()
}

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// ChooseText switches from onboarding to an empty text editor.
func (c *Composer) ChooseText() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return vocanote.Errorf(vocanote.EINVALID, "cannot start typing while %s", c.state)
	}
	c.state = StateEditing
	c.content = ""
	return nil
}

// StartDictation switches from onboarding to recording. If speech
// recognition is unsupported the user is alerted and the composer stays
// idle.
func (c *Composer) StartDictation(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		return vocanote.Errorf(vocanote.EINVALID, "cannot start dictation while %s", state)
	}
	c.gen++
	gen := c.gen
	c.state = StateRecording
	c.content = ""
	opts := c.Options
	c.mu.Unlock()

	session, err := c.recognizer.Start(ctx, opts, &handler{c: c, gen: gen})
	if err != nil {
		c.mu.Lock()
		if c.gen == gen {
			c.state = StateIdle
		}
		c.mu.Unlock()

		if vocanote.ErrorCode(err) == vocanote.EUNSUPPORTED {
			c.notifier.Alert(vocanote.MsgSpeechUnsupported)
		}
		return err
	}

	c.mu.Lock()
	if c.gen != gen {
		// Stopped or committed before the session was handed over.
		c.mu.Unlock()
		c.stop(session)
		return nil
	}
	c.session = session
	c.mu.Unlock()
	return nil
}

// StopDictation ends recording and keeps the transcribed content editable.
// It is a no-op when not recording.
func (c *Composer) StopDictation() {
	c.mu.Lock()
	if c.state != StateRecording {
		c.mu.Unlock()
		return
	}
	session := c.detach()
	c.state = StateEditing
	c.mu.Unlock()

	c.stop(session)
}

// ChangeContent replaces the content as if the user edited it. Clearing
// the editor returns to onboarding. Ignored while idle.
func (c *Composer) ChangeContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateEditing:
		c.content = content
		if content == "" {
			c.state = StateIdle
		}
	case StateRecording:
		c.content = content
	}
}

// Commit saves the content as a note, resets to onboarding, and notifies
// the user. Empty content is a no-op returning a nil note.
func (c *Composer) Commit(ctx context.Context) (*vocanote.Note, error) {
	c.mu.Lock()
	content := c.content
	if content == "" {
		c.mu.Unlock()
		return nil, nil
	}
	session := c.detach()
	if c.state == StateRecording {
		c.state = StateEditing
	}
	c.mu.Unlock()

	c.stop(session)

	note, err := c.notes.CreateNote(ctx, content)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.state = StateIdle
	c.content = ""
	c.mu.Unlock()

	c.notifier.Success(vocanote.MsgNoteCreated)
	return note, nil
}

// Close stops any active dictation session.
func (c *Composer) Close() error {
	c.StopDictation()
	return nil
}

// detach abandons the current session and returns it. Must hold c.mu.
func (c *Composer) detach() vocanote.SpeechSession {
	session := c.session
	c.session = nil
	c.gen++
	return session
}

// stop ends a detached session. Must not hold c.mu: the session may be
// waiting on the composer to deliver a result.
func (c *Composer) stop(session vocanote.SpeechSession) {
	if session == nil {
		return
	}
	if err := session.Stop(); err != nil {
		c.logger.Error("failed to stop dictation", "err", err)
	}
}

// handler routes events from one session to the composer.
type handler struct {
	c   *Composer
	gen uint64
}

func (h *handler) OnResult(t vocanote.Transcript) {
	c := h.c
	text := t.Text()

	c.mu.Lock()
	if c.gen != h.gen || c.state != StateRecording {
		c.mu.Unlock()
		return
	}
	c.content = text
	onChange := c.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(text)
	}
}

func (h *handler) OnError(err error) {
	h.c.logger.Error("speech recognition error", "err", err)
}

func (h *handler) OnEnd() {
	h.c.logger.Debug("speech recognition ended")
}
