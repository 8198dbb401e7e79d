package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/procurement-service/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewTooManyRequests(message string) error {
	return NewDomainError("RATE_LIMITED", message, http.StatusTooManyRequests, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// rejections maps the named lifecycle and auth sentinels onto response
// codes. Guard rejections are client errors; a dangling user reference is
// store corruption and stays internal.
var rejections = []struct {
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

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return &DomainError{
				Code:       r.code,
				Message:    r.err.Error(),
				HTTPStatus: r.status,
				Err:        err,
			}
		}
	}
	if errors.Is(err, domain.ErrTicketNotFound) {
		if de, ok := NewNotFound("ticket", nil).(*DomainError); ok {
			return de
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
