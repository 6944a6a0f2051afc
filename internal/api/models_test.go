package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/domain"
)

func TestRegisterRequest_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		request  RegisterRequest
		expected []shared.FieldError
	}{
		{
			name:    "valid",
			request: RegisterRequest{Name: "Al", Email: "al@example.com", Password: "secret1"},
		},
		{
			name:    "everything missing",
			request: RegisterRequest{},
			expected: []shared.FieldError{
				{Param: "name", Msg: "Please Enter a name"},
				{Param: "email", Msg: "Please Enter a valid email"},
				{Param: "password", Msg: "Please enter password with at least 6 characters"},
			},
		},
		{
			name:    "bad email",
			request: RegisterRequest{Name: "Al", Email: "not-an-email", Password: "secret1"},
			expected: []shared.FieldError{
				{Param: "email", Msg: "Please Enter a valid email"},
			},
		},
		{
			name:    "short password",
			request: RegisterRequest{Name: "Al", Email: "al@example.com", Password: "12345"},
			expected: []shared.FieldError{
				{Param: "password", Msg: "Please enter password with at least 6 characters"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := shared.ValidateRequest(&tt.request)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, shared.FieldErrors(err, &tt.request))
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	t.Parallel()

	req := LoginRequest{Email: "bad"}
	err := shared.ValidateRequest(&req)
	require.Error(t, err)
	assert.Equal(t, []shared.FieldError{
		{Param: "email", Msg: "Please include a valid email"},
		{Param: "password", Msg: "Password is required"},
	}, shared.FieldErrors(err, &req))
}

func TestUpdateContactRequest_Presence(t *testing.T) {
	t.Parallel()

	var req UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"555-0100","email":""}`), &req))

	patch := req.toPatch()
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Relationship)
	require.NotNil(t, patch.Phone)
	assert.Equal(t, "555-0100", *patch.Phone)
	require.NotNil(t, patch.Email)
	assert.Equal(t, "", *patch.Email)
}

func TestContactResponse_JSONShape(t *testing.T) {
	t.Parallel()

	c := &domain.Contact{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Bob",
		Email:        "bob@example.com",
		Phone:        "555",
		Relationship: "personal",
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(contactToResponse(c))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, c.ID.String(), fields["id"])
	assert.Equal(t, c.UserID.String(), fields["user"])
	assert.Equal(t, "Bob", fields["name"])
	assert.Equal(t, "personal", fields["relationship"])
	assert.Equal(t, "2024-03-01T12:00:00Z", fields["date"])
}

func TestContactsToResponses_Empty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(contactsToResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestUserResponse_OmitsPassword(t *testing.T) {
	t.Parallel()

	u := &domain.User{ID: uuid.New(), Name: "Al", Email: "al@example.com", HashedPassword: "$2a$10$secret"}
	data, err := json.Marshal(userToResponse(u))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}
