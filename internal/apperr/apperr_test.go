package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("tagged error", func(t *testing.T) {
		err := New(KindNotFound, "book not found")
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.True(t, IsNotFound(err))
		assert.False(t, IsValidation(err))
	})

	t.Run("walks the wrap chain", func(t *testing.T) {
		inner := New(KindValidation, "rating must be between 0 and 5")
		wrapped := fmt.Errorf("updating book: %w", inner)
		assert.Equal(t, KindValidation, KindOf(wrapped))
	})

	t.Run("untagged error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
		assert.Equal(t, KindInternal, KindOf(nil))
	})
}

func TestMessage(t *testing.T) {
	t.Run("client message never includes the cause", func(t *testing.T) {
		cause := errors.New("UNIQUE constraint failed")
		err := Wrap(KindInternal, "failed to create book", cause)
		assert.Equal(t, "failed to create book", Message(err))
		assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	})

	t.Run("untagged error gets a generic message", func(t *testing.T) {
		assert.Equal(t, "internal server error", Message(errors.New("boom")))
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(KindNotFound, "book not found", cause)
	assert.True(t, errors.Is(err, cause))
}
