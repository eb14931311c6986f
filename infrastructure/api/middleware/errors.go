package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ynstf/boston-housing-api/internal/database"
)

// RequestError carries an HTTP status for errors raised by handlers.
type RequestError struct {
	status  int
	message string
}

// NewRequestError creates a RequestError with the given status and message.
func NewRequestError(status int, message string) *RequestError {
	return &RequestError{status: status, message: message}
}

// Status returns the HTTP status code.
func (e *RequestError) Status() int { return e.status }

// Error returns the error message.
func (e *RequestError) Error() string { return e.message }

// APIError represents a JSON:API error object.
type APIError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	ID     string `json:"id,omitempty"`
}

// APIErrorResponse wraps error objects in a JSON:API response.
type APIErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// WriteError writes a JSON:API formatted error response. Sentinel
// errors from the storage layer map to their HTTP statuses; everything
// else is a 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	detail := err.Error()

	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		status = reqErr.Status()
		title = http.StatusText(status)
		detail = reqErr.Error()
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
		title = "Not Found"
	}

	correlationID := GetCorrelationID(r.Context())

	if logger != nil {
		logger.Error("request error",
			"correlation_id", correlationID,
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	resp := APIErrorResponse{
		Errors: []APIError{
			{
				Status: http.StatusText(status),
				Title:  title,
				Detail: detail,
				ID:     correlationID,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
