package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Forbidden("Unauthorized"), http.StatusForbidden},
		{NotFound("Bot not found"), http.StatusNotFound},
		{Conflict("Already subscribed"), http.StatusConflict},
		{Internal(errors.New("pq: connection refused")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "err: %v", tc.err)
	}
}

func TestPublicMessageHidesInternalCause(t *testing.T) {
	err := Internal(errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", PublicMessage(err))

	assert.Equal(t, "Bot not found", PublicMessage(NotFound("Bot not found")))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("plain error")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(cause, CodeNotFound, "User not found")

	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeConflict))
}

func TestAsSeesThroughWrapping(t *testing.T) {
	inner := Conflict("Already subscribed")
	wrapped := fmt.Errorf("subscribe: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeConflict, appErr.Code)
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))
}
