package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status enumerates lifecycle states for procurement tickets.
// Cancelled, Denied and PaymentCompleted are terminal.
type Status int16

const (
	// StatusRequested: some materials are requested.
	StatusRequested Status = 1

	// StatusCancelled: request is cancelled by the initiator.
	StatusCancelled Status = 2

	// StatusConfirmed: the purchasing manager confirmed the request and
	// approved the payment, fixing the price.
	StatusConfirmed Status = 3

	// StatusDenied: the purchasing manager denied the request.
	StatusDenied Status = 4

	// StatusPaymentCompleted: payment is completed by accounting.
	StatusPaymentCompleted Status = 5
)

var statusTokens = map[Status]string{
	StatusRequested:        "REQUESTED",
	StatusCancelled:        "CANCELLED",
	StatusConfirmed:        "CONFIRMED",
	StatusDenied:           "DENIED",
	StatusPaymentCompleted: "PAYMENT_COMPLETED",
}

// StatusFromCode converts a persisted integer code into a Status.
func StatusFromCode(code int16) (Status, error) {
	status := Status(code)
	if _, ok := statusTokens[status]; !ok {
		return 0, fmt.Errorf("invalid status code %d", code)
	}
	return status, nil
}

// ParseStatus converts a wire token into a Status.
func ParseStatus(token string) (Status, error) {
	for status, t := range statusTokens {
		if t == token {
			return status, nil
		}
	}
	return 0, fmt.Errorf("invalid status %q", token)
}

// Code returns the integer code stored in the database. Persisted codes
// cannot be renumbered without a migration.
func (s Status) Code() int16 {
	return int16(s)
}

func (s Status) String() string {
	if token, ok := statusTokens[s]; ok {
		return token
	}
	return fmt.Sprintf("Status(%d)", int16(s))
}

// MarshalJSON emits the wire token.
func (s Status) MarshalJSON() ([]byte, error) {
	token, ok := statusTokens[s]
	if !ok {
		return nil, fmt.Errorf("invalid status code %d", int16(s))
	}
	return json.Marshal(token)
}

// UnmarshalJSON accepts the wire token.
func (s *Status) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	status, err := ParseStatus(token)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Ticket is the procurement request aggregate. Price is non-nil exactly
// when Status is Confirmed or PaymentCompleted. PurchasingManager and
// AccountingManager are set once by the respective manager action and
// never cleared afterwards.
type Ticket struct {
	ID                uuid.UUID
	Title             string
	Description       string
	Status            Status
	Count             int
	Price             *float64
	Initiator         uuid.UUID
	PurchasingManager *uuid.UUID
	AccountingManager *uuid.UUID
	CreatedAt         time.Time
}

// NewTicket creates a Requested ticket on behalf of the actor.
// Only initiators may request materials.
func NewTicket(actor *User, title, description string, count int) (Ticket, error) {
	if actor.Role != RoleInitiator {
		return Ticket{}, ErrTicketCannotBeCreated
	}
	return Ticket{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      StatusRequested,
		Count:       count,
		Initiator:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
