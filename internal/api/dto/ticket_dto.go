package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// EditTicketRequest is the tagged lifecycle operation payload:
// {"op": "confirm", "data": {"price": 100}}.
type EditTicketRequest struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"data"`
}

// Operation decodes the request into a lifecycle operation.
func (r EditTicketRequest) Operation() (domain.Operation, error) {
	switch r.Op {
	case "editTitle":
		var data struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return nil, fmt.Errorf("editTitle: %w", err)
		}
		return domain.EditTitle{Title: data.Title}, nil
	case "editDescription":
		var data struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return nil, fmt.Errorf("editDescription: %w", err)
		}
		return domain.EditDescription{Description: data.Description}, nil
	case "cancel":
		return domain.Cancel{}, nil
	case "confirm":
		var data struct {
			Price float64 `json:"price"`
		}
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return nil, fmt.Errorf("confirm: %w", err)
		}
		return domain.Confirm{Price: data.Price}, nil
	case "deny":
		return domain.Deny{}, nil
	case "markAsPaid":
		return domain.MarkAsPaid{}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", r.Op)
	}
}

// TicketResponse is a ticket with its user references replaced by
// embedded summaries.
type TicketResponse struct {
	ID                uuid.UUID     `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Status            domain.Status `json:"status"`
	Count             int           `json:"count"`
	Price             *float64      `json:"price"`
	Initiator         UserResponse  `json:"initiator"`
	PurchasingManager *UserResponse `json:"purchasingManager"`
	AccountingManager *UserResponse `json:"accountingManager"`
}

// TicketListResponse is one page of tickets plus the full ticket count.
type TicketListResponse struct {
	Tickets    []TicketResponse `json:"tickets"`
	TotalCount int              `json:"totalCount"`
}
