package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Slot is expected
	var _ vocanote.Slot = &mock.Slot{}
}

func TestSlot_Write(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		s := &mock.Slot{
			WriteFn: func(_ context.Context, value string) error {
				calledWith = value
				return nil
			},
		}

		err := s.Write(context.Background(), `{"version":1,"notes":[]}`)

		require.NoError(t, err)
		assert.Equal(t, `{"version":1,"notes":[]}`, calledWith)
	})
}
