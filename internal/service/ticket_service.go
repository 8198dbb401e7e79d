package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/api/dto"
	"github.com/spec-kit/procurement-service/internal/domain"
	"github.com/spec-kit/procurement-service/internal/repository"
)

// TicketService coordinates the procurement workflow: it loads tickets,
// runs lifecycle operations through the engine and persists the result.
//
// The load-apply-upsert cycle carries no concurrency control: two
// concurrent operations on the same ticket race and the last writer wins.
type TicketService struct {
	tickets   repository.TicketRepository
	assembler *ViewAssembler
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Count       int
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, assembler *ViewAssembler) *TicketService {
	return &TicketService{tickets: tickets, assembler: assembler}
}

// Create requests materials on behalf of the actor.
func (s *TicketService) Create(ctx context.Context, actor *domain.User, input TicketCreateInput) (*dto.TicketResponse, error) {
	ticket, err := domain.NewTicket(actor, input.Title, input.Description, input.Count)
	if err != nil {
		return nil, err
	}
	if err := s.tickets.Upsert(ctx, &ticket); err != nil {
		return nil, err
	}
	return s.assembler.Ticket(ctx, ticket)
}

// Edit applies a lifecycle operation to the ticket and returns the
// updated view. A rejected operation persists nothing.
func (s *TicketService) Edit(ctx context.Context, actor *domain.User, id uuid.UUID, op domain.Operation) (*dto.TicketResponse, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := domain.Apply(*ticket, actor, op)
	if err != nil {
		return nil, err
	}
	if err := s.tickets.Upsert(ctx, &updated); err != nil {
		return nil, err
	}
	return s.assembler.Ticket(ctx, updated)
}

// Get returns a single assembled ticket view.
func (s *TicketService) Get(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembler.Ticket(ctx, *ticket)
}

// List returns one assembled page; the total count reflects the full
// ticket set, not the page size.
func (s *TicketService) List(ctx context.Context, offset, limit int) (*dto.TicketListResponse, error) {
	page, err := s.tickets.GetPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	count, err := s.tickets.Count(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.Page(ctx, page, count)
}
