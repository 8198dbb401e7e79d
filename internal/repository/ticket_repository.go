package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/procurement-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Tickets are never
// deleted; Upsert covers both creation and every lifecycle mutation.
type TicketRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	GetPage(ctx context.Context, offset, limit int) ([]domain.Ticket, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, ticket *domain.Ticket) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, description, status, count, price,
               initiator_id, purchasing_manager_id, accounting_manager_id,
               created_at`

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	const query = `
        SELECT ` + ticketColumns + `
        FROM tickets WHERE id=$1`

	row := r.pool.QueryRow(ctx, query, id)
	ticket, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

// GetPage returns tickets ordered by created_at descending with ties
// broken by id descending, so repeated reads of an unchanged store see
// an identical sequence.
func (r *ticketRepository) GetPage(ctx context.Context, offset, limit int) ([]domain.Ticket, error) {
	const query = `
        SELECT ` + ticketColumns + `
        FROM tickets
        ORDER BY created_at DESC, id DESC
        OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

// Count reports the full unfiltered ticket count.
func (r *ticketRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ticketRepository) Upsert(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, title, description, status, count, price,
                             initiator_id, purchasing_manager_id,
                             accounting_manager_id, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id) DO UPDATE
        SET title = EXCLUDED.title,
            description = EXCLUDED.description,
            status = EXCLUDED.status,
            count = EXCLUDED.count,
            price = EXCLUDED.price,
            purchasing_manager_id = EXCLUDED.purchasing_manager_id,
            accounting_manager_id = EXCLUDED.accounting_manager_id`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Description,
		ticket.Status.Code(),
		int32(ticket.Count),
		ticket.Price,
		ticket.Initiator,
		ticket.PurchasingManager,
		ticket.AccountingManager,
		ticket.CreatedAt,
	)
	return err
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket     domain.Ticket
		statusCode int16
		count      int32
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&statusCode,
		&count,
		&ticket.Price,
		&ticket.Initiator,
		&ticket.PurchasingManager,
		&ticket.AccountingManager,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}
	status, err := domain.StatusFromCode(statusCode)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", ticket.ID, err)
	}
	ticket.Status = status
	ticket.Count = int(count)
	return &ticket, nil
}
