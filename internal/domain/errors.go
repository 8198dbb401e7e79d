package domain

import "errors"

// Lifecycle rejections. Each guarded operation keeps its own sentinel so
// callers can render precise denial reasons even though the underlying
// guards (status mismatch or actor mismatch) are shared.
var (
	ErrTicketCannotBeCreated   = errors.New("ticket cannot be created")
	ErrTicketCannotBeModified  = errors.New("ticket cannot be modified")
	ErrTicketCannotBeCancelled = errors.New("ticket cannot be cancelled")
	ErrTicketCannotBeConfirmed = errors.New("ticket cannot be confirmed")
	ErrTicketCannotBeDenied    = errors.New("ticket cannot be denied")
	ErrTicketCannotBePaid      = errors.New("ticket cannot be paid")
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrWrongLoginOrPassword = errors.New("wrong login or password")
	ErrInvalidToken         = errors.New("invalid token")

	// ErrDanglingUserRef marks a stored ticket referencing a user the
	// store no longer resolves. Store corruption, not bad input.
	ErrDanglingUserRef = errors.New("dangling user reference")
)
