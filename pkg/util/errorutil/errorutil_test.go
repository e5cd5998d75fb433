package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", NewValidationError("bad", nil), CodeInvalidArgument, http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"not found", NewNotFound("profile", nil), CodeNotFound, http.StatusNotFound},
		{"storage", NewStorageError("update failed", errors.New("boom")), CodeStorage, http.StatusInternalServerError},
		{"no rows", fmt.Errorf("lookup: %w", pgx.ErrNoRows), CodeNotFound, http.StatusNotFound},
		{"generic", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, got.Code)
			}
			if got.HTTPStatus != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, got.HTTPStatus)
			}
		})
	}

	if ToDomainError(nil) != nil {
		t.Fatalf("nil error should map to nil")
	}
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError("update profile", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected storage error to wrap its cause")
	}
	if !IsCode(err, CodeStorage) {
		t.Fatalf("expected storage code")
	}
	if IsCode(cause, CodeStorage) {
		t.Fatalf("plain errors carry no code")
	}
}
