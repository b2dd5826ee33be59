// Package store keeps the note collection in memory and mirrors it to a slot.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/vocanote"
	"github.com/google/uuid"
	"github.com/imkira/go-observer"
)

// Compile-time interface verification.
var _ vocanote.NoteService = (*NoteService)(nil)

// NoteService implements vocanote.NoteService over a vocanote.Slot.
// The in-memory collection is authoritative; the slot is rewritten in
// full after every mutation.
type NoteService struct {
	// Now returns the creation time for new notes.
	Now func() time.Time

	// NewID returns a fresh note ID.
	NewID func() string

	slot   vocanote.Slot
	logger *slog.Logger

	mu    sync.Mutex
	notes []*vocanote.Note
	prop  observer.Property
}

// NewNoteService creates a NoteService with an empty collection.
// Call Load to read the persisted collection.
func NewNoteService(slot vocanote.Slot, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NoteService{
		Now:    func() time.Time { return time.Now().UTC() },
		NewID:  uuid.NewString,
		slot:   slot,
		logger: logger,
		prop:   observer.NewProperty([]*vocanote.Note{}),
	}
}

// Load replaces the collection with the persisted one and returns it.
// A missing or unparseable value yields an empty collection.
func (s *NoteService) Load(ctx context.Context) []*vocanote.Note {
	notes := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.prop.Update(snapshot(s.notes))
	return snapshot(s.notes)
}

func (s *NoteService) read(ctx context.Context) []*vocanote.Note {
	value, ok, err := s.slot.Read(ctx)
	if err != nil {
		s.logger.Error("failed to read notes", "err", err)
		return []*vocanote.Note{}
	}
	if !ok {
		return []*vocanote.Note{}
	}

	notes, err := Decode(value)
	if err != nil {
		s.logger.Warn("discarding unreadable notes", "err", err)
		return []*vocanote.Note{}
	}
	return notes
}

// Notes returns a copy of the collection, newest first.
func (s *NoteService) Notes(ctx context.Context) ([]*vocanote.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.notes), nil
}

// CreateNote prepends a new note and persists the collection.
func (s *NoteService) CreateNote(ctx context.Context, content string) (*vocanote.Note, error) {
	note := &vocanote.Note{
		ID:        s.NewID(),
		CreatedAt: s.Now(),
		Content:   content,
	}
	if err := note.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID == note.ID {
			return nil, vocanote.Errorf(vocanote.ECONFLICT, "note %q already exists", note.ID)
		}
	}

	notes := make([]*vocanote.Note, 0, len(s.notes)+1)
	notes = append(notes, note)
	s.notes = append(notes, s.notes...)
	s.commit(ctx)

	return note, nil
}

// DeleteNote removes the note with the given ID, if present, and
// persists the collection.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]*vocanote.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	s.notes = notes
	s.commit(ctx)

	return nil
}

// Subscribe returns a channel receiving the full collection after every
// mutation. The channel is closed when ctx is done.
func (s *NoteService) Subscribe(ctx context.Context) <-chan []*vocanote.Note {
	stream := s.prop.Observe()

	result := make(chan []*vocanote.Note)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				notes := stream.Next().([]*vocanote.Note)

				select {
				case <-ctx.Done():
					return
				case result <- notes:
				}
			}
		}
	}()

	return result
}

// commit persists and publishes the collection. Must hold s.mu.
// Write failures are logged; the in-memory collection stands.
func (s *NoteService) commit(ctx context.Context) {
	value, err := Encode(s.notes)
	if err != nil {
		s.logger.Error("failed to encode notes", "err", err)
	} else if err := s.slot.Write(ctx, value); err != nil {
		s.logger.Error("failed to write notes", "count", len(s.notes), "err", err)
	}

	s.prop.Update(snapshot(s.notes))
}

func snapshot(notes []*vocanote.Note) []*vocanote.Note {
	out := make([]*vocanote.Note, len(notes))
	copy(out, notes)
	return out
}
