package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
)

func newLoggedRequest(t *testing.T, level slog.Level) (*http.Request, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	ctx := logger.WithLogger(req.Context(), log)
	ctx = WithTraceID(ctx, "trace-123")
	return req.WithContext(ctx), &buf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         MessageResponse{Msg: "This contact has been removed"},
			expectedBody: `{"msg":"This contact has been removed"}`,
		},
		{
			name:         "empty slice",
			status:       http.StatusOK,
			data:         []string{},
			expectedBody: `[]`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req, _ := newLoggedRequest(t, slog.LevelDebug)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "This contact does not exist.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "This contact does not exist.", body.Msg)
	assert.Equal(t, "trace-123", body.TraceID)
}

func TestRespondWithValidationErrors(t *testing.T) {
	req, _ := newLoggedRequest(t, slog.LevelDebug)
	w := httptest.NewRecorder()

	RespondWithValidationErrors(w, req, []FieldError{{Param: "name", Msg: "Name is required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"errors":[{"param":"name","msg":"Name is required"}],"trace_id":"trace-123"}`,
		w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Run("server error is logged at error level and redacted", func(t *testing.T) {
		req, buf := newLoggedRequest(t, slog.LevelDebug)
		w := httptest.NewRecorder()

		err := errors.New(`connect to postgres://admin:hunter2@db:5432/contacts failed`)
		RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Server Error", err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "postgres")
		assert.Contains(t, w.Body.String(), `"msg":"Server Error"`)

		logs := buf.String()
		assert.Contains(t, logs, `"level":"ERROR"`)
		assert.Contains(t, logs, `"trace_id":"trace-123"`)
		assert.NotContains(t, logs, "hunter2")
	})

	t.Run("client error is logged at debug level", func(t *testing.T) {
		req, buf := newLoggedRequest(t, slog.LevelInfo)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, req, http.StatusNotFound, "nope", errors.New("missing"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, buf.String(), "debug entries must be filtered at info level")
	})

	t.Run("elevated client error is logged at warn level", func(t *testing.T) {
		req, buf := newLoggedRequest(t, slog.LevelInfo)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, req, http.StatusUnauthorized, "Not authorized",
			errors.New("wrong owner"), WithElevatedLogLevel())

		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}
