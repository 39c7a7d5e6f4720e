package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", NotFound("post not found"), http.StatusNotFound, "NOT_FOUND", "post not found"},
		{"conflict", Conflict("email already registered"), http.StatusConflict, "CONFLICT", "email already registered"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials"},
		{"forbidden", Forbidden("admin session expired"), http.StatusForbidden, "FORBIDDEN", "admin session expired"},
		{"bad request", BadRequest("invalid status"), http.StatusBadRequest, "BAD_REQUEST", "invalid status"},
		{"wrapped", fmt.Errorf("update request: %w", NotFound("request not found")), http.StatusNotFound, "NOT_FOUND", "update request: request not found"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.ToErrorResponse().Error)
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err := Forbidden("cannot delete an admin account")
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsInternal(err))
	assert.True(t, IsInternal(errors.New("disk full")))
}
