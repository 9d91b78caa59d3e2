package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		success string
		want    string
		wantOK  bool
	}{
		{"success", nil, "/?tab=admin", "/?tab=admin", true},
		{"forbidden goes home", ErrForbidden, "/?tab=admin", "/", true},
		{"wrapped forbidden goes home", fmt.Errorf("add user: %w", ErrForbidden), "/?tab=timers", "/", true},
		{"login failure", ErrInvalidCredentials, "/", "/?error=login_failed", true},
		{"invalid input keeps tab", ErrInvalidInput, "/?tab=timers", "/?tab=timers&error=invalid_input", true},
		{"invalid input on bare path", ErrInvalidInput, "/", "/?error=invalid_input", true},
		{"internal error is not redirected", errors.New("disk full"), "/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RedirectTarget(tt.err, tt.success)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMapErrorToHTTP(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, MapErrorToHTTP(ErrForbidden).StatusCode)
	assert.Equal(t, http.StatusBadRequest, MapErrorToHTTP(fmt.Errorf("x: %w", ErrInvalidInput)).StatusCode)
	assert.Equal(t, http.StatusBadGateway, MapErrorToHTTP(ErrSheetUnavailable).StatusCode)

	internal := MapErrorToHTTP(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, internal.StatusCode)
	assert.Equal(t, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}, internal.ToErrorResponse())
}
