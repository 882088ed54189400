package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		err := NewValidationError("INVALID_CPF", "check digits do not match")
		assert.Equal(t, ErrorTypeValidation, err.Type)
		assert.Equal(t, "INVALID_CPF", err.Code)
		assert.Equal(t, "check digits do not match", err.Error())
	})

	t.Run("not found error", func(t *testing.T) {
		err := NewNotFoundError("bank 999")
		assert.Equal(t, ErrorTypeNotFound, err.Type)
		assert.Equal(t, "bank 999 not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewInternalError("generation failed").WithCause(cause)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "generation failed: boom", err.Error())
	})
}

func TestIsType(t *testing.T) {
	err := NewValidationError("INVALID_CEP", "must have 8 digits")
	wrapped := fmt.Errorf("parsing input: %w", err)

	assert.True(t, IsType(wrapped, ErrorTypeValidation))
	assert.False(t, IsType(wrapped, ErrorTypeNotFound))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeValidation))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	inner := errors.New("io failure")
	wrapped := Wrap(inner, "loading config")
	assert.ErrorIs(t, wrapped, inner)
	assert.Equal(t, "loading config: io failure", wrapped.Error())
}
