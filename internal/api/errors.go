package api

import (
	"log/slog"
	"net/http"
)

// Messages used by the realtime database REST interface.
const (
	MsgPermissionDenied = "Permission denied"
	MsgNotFound         = "Not Found"
	MsgInvalidData      = "Invalid data; couldn't parse JSON object, array, or value."
	MsgInternal         = "Internal server error."
)

// Error is the error envelope returned by the store: {"error": "..."}.
type Error struct {
	Message       string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewError creates an Error carrying the request's correlation ID.
func NewError(message, correlationID string) *Error {
	return &Error{Message: message, CorrelationID: correlationID}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// WriteInternalError logs err and answers 500 without leaking it.
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	corrID := CorrelationID(r.Context())
	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"correlation_id", corrID,
	)
	WriteError(w, http.StatusInternalServerError, NewError(MsgInternal, corrID))
}
