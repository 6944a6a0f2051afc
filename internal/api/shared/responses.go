package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/redact"
)

// TraceIDHeader carries the request trace ID on every response.
const TraceIDHeader = "X-Trace-ID"

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Msg     string `json:"msg"`
	TraceID string `json:"trace_id,omitempty"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// ValidationErrorResponse lists every invalid field of a request.
type ValidationErrorResponse struct {
	Errors  []FieldError `json:"errors"`
	TraceID string       `json:"trace_id,omitempty"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithValidationErrors writes a 400 response listing invalid fields.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, errs []FieldError) {
	traceID := GetTraceID(r.Context())

	logger.FromContext(r.Context()).Debug("request failed validation",
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("field_count", len(errs)))

	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
		Errors:  errs,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; err is redacted and goes to the log.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level
// - WithElevatedLogLevel raises 4xx errors to WARN
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Msg:     userMessage,
		TraceID: traceID,
	})
}
