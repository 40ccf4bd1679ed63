package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: id}, http.StatusNotFound},
		{"profile not found", &ErrProfileNotFound{ID: id}, http.StatusNotFound},
		{"match not found", &ErrMatchNotFound{ID: id}, http.StatusNotFound},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	assert.Equal(t, "email already registered: a@b.com", (&ErrEmailAlreadyExists{Email: "a@b.com"}).Error())
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Contains(t, (&ErrMatchNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrProfileNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrValidation{Field: "skills", Message: "too long"}).Error(), "skills")
}
