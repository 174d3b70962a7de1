// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses may return any JSON shape (a student, a list, a report).
// Error responses always look like:
//
//	{ "status": "error", "error": "invalid name: cannot be empty" }
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/school-api/internal/school"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response.
//
// Example output:
//
//	{ "status": "error", "error": "field name is required, field capacity must be greater than 0" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gt":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// StatusFor maps an error returned by the school domain to an HTTP status:
// rejected input and id collisions are the client's problem, anything
// else is ours.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, school.ErrValidation), errors.Is(err, school.ErrDuplicateID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with the status StatusFor picks for it.
func Error(w http.ResponseWriter, err error) error {
	return WriteJSON(w, StatusFor(err), GeneralError(err))
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusNotFound, GeneralError(errors.New(message)))
}

// Message writes a 200 {"status":"ok"} style acknowledgement.
func Message(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, map[string]string{
		"status":  StatusOK,
		"message": message,
	})
}
