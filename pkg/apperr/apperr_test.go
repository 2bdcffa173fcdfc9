package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{Unauthenticated("login required"), ErrUnauthenticated},
		{Forbidden("not yours"), ErrForbidden},
		{NotFound("news not found"), ErrNotFound},
		{Validation("title is required"), ErrValidation},
		{AlreadyLiked("You have already liked this news."), ErrAlreadyLiked},
		{NotLiked("You have not liked this news."), ErrNotLiked},
		{Conflict("username taken"), ErrConflict},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind)
		assert.True(t, IsExpected(tc.err))

		wrapped := fmt.Errorf("handler: %w", tc.err)
		assert.ErrorIs(t, wrapped, tc.kind)
		assert.True(t, IsExpected(wrapped))
	}
}

func TestMessages(t *testing.T) {
	err := Validation("This password is too short.", "This password is entirely numeric.")
	assert.Equal(t, []string{"This password is too short.", "This password is entirely numeric."}, Messages(err))
	assert.Equal(t, "This password is too short.; This password is entirely numeric.", err.Error())

	assert.Equal(t, []string{"boom"}, Messages(errors.New("boom")))
	assert.Nil(t, Messages(nil))

	bare := &Error{Kind: ErrForbidden}
	assert.Equal(t, "forbidden", bare.Error())
}

func TestIsExpected_StorageError(t *testing.T) {
	assert.False(t, IsExpected(errors.New("connection refused")))
	assert.False(t, IsExpected(nil))
}
