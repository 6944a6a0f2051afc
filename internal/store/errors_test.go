package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"ErrContactNotFound", ErrContactNotFound, true},
		{"wrapped ErrContactNotFound", fmt.Errorf("get contact: %w", ErrContactNotFound), true},
		{"store error wrapping not found", NewStoreError("contact", "delete", "missing", ErrContactNotFound), true},
		{"ErrEmailExists", ErrEmailExists, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.Is(ErrUserNotFound, ErrContactNotFound))
	assert.False(t, errors.Is(ErrContactNotFound, ErrUserNotFound))
	assert.Equal(t, "entity not found: contact", ErrContactNotFound.Error())
	assert.Equal(t, "entity already exists: email", ErrEmailExists.Error())
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("contact", "update", "failed to update contact", cause)

	assert.Equal(t, "update operation on contact failed: failed to update contact: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "create", "invalid", nil)
	assert.Equal(t, "create operation on user failed: invalid", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
