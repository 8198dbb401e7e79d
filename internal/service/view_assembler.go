package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/api/dto"
	"github.com/spec-kit/procurement-service/internal/domain"
	"github.com/spec-kit/procurement-service/internal/repository"
)

// ViewAssembler joins tickets with the users referenced by their role
// fields. It collects the distinct set of referenced ids before any I/O
// and performs exactly one batch lookup per assembly, however many
// tickets are being rendered.
type ViewAssembler struct {
	users repository.UserRepository
}

// NewViewAssembler constructs the assembler.
func NewViewAssembler(users repository.UserRepository) *ViewAssembler {
	return &ViewAssembler{users: users}
}

// Ticket assembles a single ticket view.
func (a *ViewAssembler) Ticket(ctx context.Context, ticket domain.Ticket) (*dto.TicketResponse, error) {
	views, err := a.assemble(ctx, []domain.Ticket{ticket})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Page assembles an ordered page of tickets plus the full ticket count.
func (a *ViewAssembler) Page(ctx context.Context, tickets []domain.Ticket, totalCount int) (*dto.TicketListResponse, error) {
	views, err := a.assemble(ctx, tickets)
	if err != nil {
		return nil, err
	}
	return &dto.TicketListResponse{Tickets: views, TotalCount: totalCount}, nil
}

func (a *ViewAssembler) assemble(ctx context.Context, tickets []domain.Ticket) ([]dto.TicketResponse, error) {
	ids := collectUserIDs(tickets)

	var users map[uuid.UUID]domain.User
	if len(ids) > 0 {
		var err error
		users, err = a.users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		view, err := assembleOne(&tickets[i], users)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// collectUserIDs gathers the distinct user ids referenced across the
// tickets: initiator plus both managers, nils excluded.
func collectUserIDs(tickets []domain.Ticket) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for i := range tickets {
		add(tickets[i].Initiator)
		if tickets[i].PurchasingManager != nil {
			add(*tickets[i].PurchasingManager)
		}
		if tickets[i].AccountingManager != nil {
			add(*tickets[i].AccountingManager)
		}
	}
	return ids
}

func assembleOne(ticket *domain.Ticket, users map[uuid.UUID]domain.User) (*dto.TicketResponse, error) {
	initiator, err := summaryFor(ticket, ticket.Initiator, users)
	if err != nil {
		return nil, err
	}
	view := &dto.TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Count:       ticket.Count,
		Price:       ticket.Price,
		Initiator:   *initiator,
	}
	if ticket.PurchasingManager != nil {
		manager, err := summaryFor(ticket, *ticket.PurchasingManager, users)
		if err != nil {
			return nil, err
		}
		view.PurchasingManager = manager
	}
	if ticket.AccountingManager != nil {
		manager, err := summaryFor(ticket, *ticket.AccountingManager, users)
		if err != nil {
			return nil, err
		}
		view.AccountingManager = manager
	}
	return view, nil
}

// summaryFor fails the whole aggregate on an unresolved reference rather
// than silently omitting it.
func summaryFor(ticket *domain.Ticket, id uuid.UUID, users map[uuid.UUID]domain.User) (*dto.UserResponse, error) {
	user, ok := users[id]
	if !ok {
		return nil, fmt.Errorf("ticket %s references user %s: %w", ticket.ID, id, domain.ErrDanglingUserRef)
	}
	summary := dto.UserSummary(&user)
	return &summary, nil
}
