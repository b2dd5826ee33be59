package mock

import (
	"context"

	"github.com/fwojciec/vocanote"
)

var _ vocanote.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of vocanote.NoteService.
type NoteService struct {
	NotesFn      func(ctx context.Context) ([]*vocanote.Note, error)
	CreateNoteFn func(ctx context.Context, content string) (*vocanote.Note, error)
	DeleteNoteFn func(ctx context.Context, id string) error
}

func (s *NoteService) Notes(ctx context.Context) ([]*vocanote.Note, error) {
	return s.NotesFn(ctx)
}

func (s *NoteService) CreateNote(ctx context.Context, content string) (*vocanote.Note, error) {
	return s.CreateNoteFn(ctx, content)
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	return s.DeleteNoteFn(ctx, id)
}
