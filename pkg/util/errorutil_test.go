package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/procurement-service/internal/domain"
)

func TestToDomainErrorMapsRejections(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{domain.ErrTicketCannotBeCreated, "TICKET_CANNOT_BE_CREATED", http.StatusBadRequest},
		{domain.ErrTicketCannotBeModified, "TICKET_CANNOT_BE_MODIFIED", http.StatusBadRequest},
		{domain.ErrTicketCannotBeCancelled, "TICKET_CANNOT_BE_CANCELLED", http.StatusBadRequest},
		{domain.ErrTicketCannotBeConfirmed, "TICKET_CANNOT_BE_CONFIRMED", http.StatusBadRequest},
		{domain.ErrTicketCannotBeDenied, "TICKET_CANNOT_BE_DENIED", http.StatusBadRequest},
		{domain.ErrTicketCannotBePaid, "TICKET_CANNOT_BE_PAID", http.StatusBadRequest},
		{domain.ErrWrongLoginOrPassword, "WRONG_LOGIN_OR_PASSWORD", http.StatusForbidden},
		{domain.ErrInvalidToken, "UNAUTHORIZED", http.StatusUnauthorized},
		{domain.ErrDanglingUserRef, "DATA_INCONSISTENCY", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			mapped := ToDomainError(tc.err)
			require.NotNil(t, mapped)
			assert.Equal(t, tc.code, mapped.Code)
			assert.Equal(t, tc.status, mapped.HTTPStatus)
		})
	}
}

// Wrapped sentinels still map; errors.Is runs through the chain.
func TestToDomainErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("ticket abc references user xyz: %w", domain.ErrDanglingUserRef)
	mapped := ToDomainError(err)
	require.NotNil(t, mapped)
	assert.Equal(t, "DATA_INCONSISTENCY", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNotFound(t *testing.T) {
	mapped := ToDomainError(domain.ErrTicketNotFound)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)

	mapped = ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("count must be positive", map[string]any{"count": -1})
	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestToDomainErrorUnknownIsInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
