package errcode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := New(NotFound, "work order %d not found", 7)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "work order 7 not found", err.Error())
}

func TestCodeOfWrapped(t *testing.T) {
	inner := New(BadUserInput, "bad")
	wrapped := fmt.Errorf("update: %w", inner)

	assert.Equal(t, BadUserInput, CodeOf(wrapped))
	assert.Equal(t, Internal, CodeOf(errors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "list work orders")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Internal, err.Code)
	assert.Equal(t, "list work orders: connection refused", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthenticated))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadUserInput))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal))
}
