package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
		code string
	}{
		{ErrReasonRequired, http.StatusBadRequest, "BAD_REQUEST"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("wrap: %w", ErrChangeRequestNotFound), http.StatusNotFound, "NOT_FOUND"},
		{ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status := StatusFromError(tt.err)
			require.Equal(t, tt.want, status)
			require.Equal(t, tt.code, HTTPCodeConverter(status, tt.err))
		})
	}
}

func TestWriteServiceError_HidesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteServiceError(rec, errors.New("pq: secret detail")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":{"code":"INTERNAL","message":"internal error"}}`, rec.Body.String())
}

func TestTrimmedOrNil(t *testing.T) {
	require.Nil(t, TrimmedOrNil("   "))
	got := TrimmedOrNil("  ok ")
	require.NotNil(t, got)
	require.Equal(t, "ok", *got)
}

func TestParseUUIDPtr(t *testing.T) {
	id, err := ParseUUIDPtr("")
	require.NoError(t, err)
	require.Nil(t, id)

	_, err = ParseUUIDPtr("nope")
	require.ErrorIs(t, err, ErrInvalidArgument)

	want := uuid.New()
	id, err = ParseUUIDPtr(want.String())
	require.NoError(t, err)
	require.Equal(t, want, *id)
}
