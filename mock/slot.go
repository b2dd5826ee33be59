package mock

import (
	"context"

	"github.com/fwojciec/vocanote"
)

var _ vocanote.Slot = (*Slot)(nil)

// Slot is a mock implementation of vocanote.Slot.
type Slot struct {
	ReadFn  func(ctx context.Context) (string, bool, error)
	WriteFn func(ctx context.Context, value string) error
}

func (s *Slot) Read(ctx context.Context) (string, bool, error) {
	return s.ReadFn(ctx)
}

func (s *Slot) Write(ctx context.Context, value string) error {
	return s.WriteFn(ctx, value)
}
