package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courtside/draftboard/internal/export"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/session"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNoData          = "NO_DATA"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeUnknownFormat   = "UNKNOWN_FORMAT"
	CodeUnknownPosition = "UNKNOWN_POSITION"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Map model errors
	case errors.Is(err, model.ErrNoData), errors.Is(err, model.ErrDatasetNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNoData, "No player data is loaded"}}
	case errors.Is(err, model.ErrPlayerNotInDataset):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player is not in the current dataset"}}
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrSessionExpired):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	// Map service errors
	case errors.Is(err, session.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, export.ErrUnknownFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownFormat, "Unknown export format"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
