package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique attribute is already taken.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is returned for bad credentials or a role mismatch.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrForbidden is returned for a missing, expired or invalid admin session and for disallowed actions.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest is returned when input is missing or invalid.
	ErrBadRequest = errors.New("bad request")
)

// DomainError attaches a human-readable message to one of the sentinel kinds.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NotFound returns an ErrNotFound carrying msg.
func NotFound(msg string) error { return &DomainError{Kind: ErrNotFound, Message: msg} }

// Conflict returns an ErrConflict carrying msg.
func Conflict(msg string) error { return &DomainError{Kind: ErrConflict, Message: msg} }

// Unauthorized returns an ErrUnauthorized carrying msg.
func Unauthorized(msg string) error { return &DomainError{Kind: ErrUnauthorized, Message: msg} }

// Forbidden returns an ErrForbidden carrying msg.
func Forbidden(msg string) error { return &DomainError{Kind: ErrForbidden, Message: msg} }

// BadRequest returns an ErrBadRequest carrying msg.
func BadRequest(msg string) error { return &DomainError{Kind: ErrBadRequest, Message: msg} }

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// IsInternal reports whether err falls outside the anticipated categories.
func IsInternal(err error) bool {
	return MapErrorToHTTP(err).StatusCode == http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrBadRequest):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BAD_REQUEST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
