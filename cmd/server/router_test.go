package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasirshahid/contactManager-server/internal/api"
	"github.com/yasirshahid/contactManager-server/internal/api/shared"
	"github.com/yasirshahid/contactManager-server/internal/config"
	"github.com/yasirshahid/contactManager-server/internal/mocks"
	"github.com/yasirshahid/contactManager-server/internal/service"
)

// newTestServer wires the real router, handlers and services over in-memory
// stores. Tokens are the user ID itself.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userService, err := service.NewUserService(mocks.NewMockUserStore(), &mocks.MockPasswordService{}, logger)
	require.NoError(t, err)
	contactService, err := service.NewContactService(mocks.NewMockContactStore(), logger)
	require.NoError(t, err)

	app := &application{
		config:         &config.Config{},
		logger:         logger,
		jwtService:     mocks.UserTokenJWTService(),
		userService:    userService,
		contactService: contactService,
	}

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

type testClient struct {
	t   *testing.T
	srv *httptest.Server
}

func (c testClient) do(method, path, token, body string) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, reader)
	require.NoError(c.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, data
}

func (c testClient) register(name, email string) string {
	c.t.Helper()

	resp, data := c.do(http.MethodPost, "/api/users", "",
		`{"name":"`+name+`","email":"`+email+`","password":"secret1"}`)
	require.Equal(c.t, http.StatusOK, resp.StatusCode, string(data))

	var tok api.TokenResponse
	require.NoError(c.t, json.Unmarshal(data, &tok))
	require.NotEmpty(c.t, tok.Token)
	return tok.Token
}

func TestRouter_ContactLifecycle(t *testing.T) {
	t.Parallel()

	c := testClient{t: t, srv: newTestServer(t)}
	alToken := c.register("Al", "al@example.com")

	resp, data := c.do(http.MethodPost, "/api/contacts", alToken,
		`{"name":"Bob","email":"bob@example.com","phone":"555-0100","relationship":"personal"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	var bob api.ContactResponse
	require.NoError(t, json.Unmarshal(data, &bob))
	assert.Equal(t, "Bob", bob.Name)
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))

	resp, data = c.do(http.MethodGet, "/api/contacts", alToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []api.ContactResponse
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, bob.ID, list[0].ID)

	resp, data = c.do(http.MethodPut, "/api/contacts/"+bob.ID.String(), alToken, `{"phone":"555-0199"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	var updated api.ContactResponse
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "bob@example.com", updated.Email)

	resp, data = c.do(http.MethodDelete, "/api/contacts/"+bob.ID.String(), alToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"msg":"This contact has been removed"}`, string(data))

	resp, data = c.do(http.MethodGet, "/api/contacts", alToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestRouter_Ownership(t *testing.T) {
	t.Parallel()

	c := testClient{t: t, srv: newTestServer(t)}
	alToken := c.register("Al", "al@example.com")
	eveToken := c.register("Eve", "eve@example.com")

	resp, data := c.do(http.MethodPost, "/api/contacts", alToken, `{"name":"Bob"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bob api.ContactResponse
	require.NoError(t, json.Unmarshal(data, &bob))

	resp, data = c.do(http.MethodDelete, "/api/contacts/"+bob.ID.String(), eveToken, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(data), "Not authorized")

	resp, data = c.do(http.MethodPut, "/api/contacts/"+bob.ID.String(), eveToken, `{"name":"Mallory"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(data), "Not authorized")

	resp, data = c.do(http.MethodGet, "/api/contacts", eveToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))

	resp, data = c.do(http.MethodPut, "/api/contacts/"+uuid.NewString(), alToken, `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(data), "This contact does not exist.")
}

func TestRouter_Auth(t *testing.T) {
	t.Parallel()

	c := testClient{t: t, srv: newTestServer(t)}
	token := c.register("Al", "al@example.com")

	t.Run("login", func(t *testing.T) {
		resp, data := c.do(http.MethodPost, "/api/auth", "", `{"email":"AL@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
		var tok api.TokenResponse
		require.NoError(t, json.Unmarshal(data, &tok))
		assert.Equal(t, token, tok.Token)
	})

	t.Run("current user", func(t *testing.T) {
		resp, data := c.do(http.MethodGet, "/api/auth", token, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var user api.UserResponse
		require.NoError(t, json.Unmarshal(data, &user))
		assert.Equal(t, "Al", user.Name)
		assert.NotContains(t, string(data), "secret1")
	})

	t.Run("duplicate registration", func(t *testing.T) {
		resp, data := c.do(http.MethodPost, "/api/users", "",
			`{"name":"Al","email":"al@example.com","password":"secret1"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(data), "A User with this email already exists")
	})

	t.Run("no token", func(t *testing.T) {
		resp, data := c.do(http.MethodGet, "/api/contacts", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, string(data), "No token, authorization denied")
	})

	t.Run("bad token", func(t *testing.T) {
		resp, data := c.do(http.MethodGet, "/api/contacts", "garbage", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, string(data), "Token is not valid")
	})

	t.Run("health", func(t *testing.T) {
		resp, data := c.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", string(data))
	})
}
