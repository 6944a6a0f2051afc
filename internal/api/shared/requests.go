package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps the size of JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// Global validator instance for reuse. Field names in validation errors are
// reported by their json tag so they match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
// Bodies larger than MaxRequestBodyBytes are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// MessageProvider is implemented by request types that map a field name to
// the message shown when that field fails validation.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// FieldErrors converts a validation failure into client-facing field errors.
// It returns nil if err is not a validator.ValidationErrors.
func FieldErrors(err error, req interface{}) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	var messages map[string]string
	if mp, ok := req.(MessageProvider); ok {
		messages = mp.ValidationMessages()
	}

	out := make([]FieldError, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true

		msg, ok := messages[field]
		if !ok {
			msg = fmt.Sprintf("%s failed the %s check", field, fe.Tag())
		}
		out = append(out, FieldError{Param: field, Msg: msg})
	}
	return out
}
