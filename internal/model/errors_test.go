package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsValidationError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()

		ve, ok := AsValidationError(NewValidationError("Please provide a password."))
		require.True(t, ok)
		assert.Equal(t, "Please provide a password.", ve.Info)
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("update failed: %w", NewValidationError("Old password is incorrect."))

		ve, ok := AsValidationError(wrapped)
		require.True(t, ok)
		assert.Equal(t, "Old password is incorrect.", ve.Info)
	})

	t.Run("other errors", func(t *testing.T) {
		t.Parallel()

		_, ok := AsValidationError(errors.New("connection reset"))
		assert.False(t, ok)

		_, ok = AsValidationError(ErrNotFound)
		assert.False(t, ok)
	})
}
