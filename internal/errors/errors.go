package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrForbidden is returned when the session lacks the role for a mutation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when a form value cannot be used.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned when no user matches email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSubjects is returned by the sheet import when there is no subject to
	// attach absences to.
	ErrNoSubjects = errors.New("no subjects defined")
	// ErrSheetUnavailable is returned when the attendance sheet cannot be fetched.
	ErrSheetUnavailable = errors.New("attendance sheet unavailable")
)

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

// MapErrorToHTTP maps domain errors to HTTP errors for the JSON endpoints.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNoSubjects):
		return NewHTTPError(http.StatusConflict, err.Error(), "NO_SUBJECTS")
	case errors.Is(err, ErrSheetUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "SHEET_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// RedirectTarget returns where a form post goes after err. success is the
// page the form came from. Denied mutations go home without a marker, as
// they always have. ok is false for errors that are not the user's fault;
// those are reported with MapErrorToHTTP instead.
func RedirectTarget(err error, success string) (target string, ok bool) {
	switch {
	case err == nil:
		return success, true
	case errors.Is(err, ErrForbidden):
		return "/", true
	case errors.Is(err, ErrInvalidCredentials):
		return "/?error=login_failed", true
	case errors.Is(err, ErrInvalidInput):
		return withQuery(success, "error=invalid_input"), true
	default:
		return "", false
	}
}

func withQuery(target, param string) string {
	if strings.Contains(target, "?") {
		return target + "&" + param
	}
	return target + "?" + param
}
