package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrJobNotFound is returned when a referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = errors.New("invalid login")
	// ErrPasswordMismatch is returned when the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	// ErrResumeRequired is returned when the deployment requires a resume and none was sent.
	ErrResumeRequired = errors.New("resume is required")
	// ErrResumeTooLarge is returned when an uploaded resume exceeds the configured limit.
	ErrResumeTooLarge = errors.New("resume file is too large")
	// ErrResumeNotFound is returned when a stored resume cannot be located.
	ErrResumeNotFound = errors.New("resume not found")
)

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "all fields required"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ErrorResponse represents a standardized error body.
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return NewHTTPError(http.StatusBadRequest, verr.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, "Job not found", "JOB_NOT_FOUND")
	case errors.Is(err, ErrResumeNotFound):
		return NewHTTPError(http.StatusNotFound, "Resume not found", "RESUME_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid login", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrResumeRequired):
		return NewHTTPError(http.StatusBadRequest, "All fields required", "RESUME_REQUIRED")
	case errors.Is(err, ErrResumeTooLarge):
		return NewHTTPError(http.StatusRequestEntityTooLarge, err.Error(), "RESUME_TOO_LARGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR")
	}
}
