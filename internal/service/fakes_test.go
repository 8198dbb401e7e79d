package service

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/domain"
)

type fakeUserRepo struct {
	users      map[uuid.UUID]domain.User
	batchCalls int
	lastBatch  []uuid.UUID
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Login == login {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error) {
	r.batchCalls++
	r.lastBatch = append([]uuid.UUID(nil), ids...)

	result := make(map[uuid.UUID]domain.User, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

type fakeTicketRepo struct {
	tickets map[uuid.UUID]domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[uuid.UUID]domain.Ticket)}
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &ticket, nil
}

// GetPage mirrors the store ordering: created_at descending, id
// descending on ties.
func (r *fakeTicketRepo) GetPage(_ context.Context, offset, limit int) ([]domain.Ticket, error) {
	all := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		all = append(all, ticket)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeTicketRepo) Count(_ context.Context) (int, error) {
	return len(r.tickets), nil
}

func (r *fakeTicketRepo) Upsert(_ context.Context, ticket *domain.Ticket) error {
	r.tickets[ticket.ID] = *ticket
	return nil
}
