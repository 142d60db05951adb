package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("cause")

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(errCause, CodeConflict, "entry name is not unique")

	assert.ErrorIs(t, err, errCause)
	assert.Equal(t, "entry name is not unique: cause", err.Error())
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeNotFound))
}

func TestWrapDoesNotRepeatMessage(t *testing.T) {
	kind := errors.New("cookTime must be greater or equal to 0")
	err := Wrap(fmt.Errorf("%w: -1", kind), CodeValidation, kind.Error())

	assert.Equal(t, "cookTime must be greater or equal to 0: -1", err.Error())
	assert.Equal(t, "cookTime must be greater or equal to 0", Wrap(kind, CodeValidation, kind.Error()).Error())
	assert.ErrorIs(t, err, kind)
}

func TestHasCodeWalksNestedErrors(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := fmt.Errorf("lookup: %w", Wrap(inner, CodeInvariantViolation, "unresolved reference"))

	assert.True(t, HasCode(outer, CodeInvariantViolation))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.Equal(t, CodeInvariantViolation, CodeOf(outer))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errCause))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code     Code
		expected int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeInvalidRequest, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInvariantViolation, http.StatusUnprocessableEntity},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, ToHTTPStatus(tt.code))
		})
	}
}
