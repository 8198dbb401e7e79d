package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/procurement-service/internal/domain"
)

func TestAssemblePageSingleBatchLookup(t *testing.T) {
	initiator := domain.User{ID: uuid.New(), Name: "Alice", Role: domain.RoleInitiator}
	purchasing := domain.User{ID: uuid.New(), Name: "Bob", Role: domain.RolePurchasingManager}
	accounting := domain.User{ID: uuid.New(), Name: "Charlie", Role: domain.RoleAccountingManager}
	users := newFakeUserRepo(initiator, purchasing, accounting)
	assembler := NewViewAssembler(users)

	price := 10.0
	tickets := []domain.Ticket{
		{
			ID: uuid.New(), Title: "Ticket 1", Status: domain.StatusRequested,
			Count: 1, Initiator: initiator.ID, CreatedAt: time.Now(),
		},
		{
			ID: uuid.New(), Title: "Ticket 2", Status: domain.StatusConfirmed,
			Count: 2, Price: &price, Initiator: initiator.ID,
			PurchasingManager: &purchasing.ID, CreatedAt: time.Now(),
		},
		{
			ID: uuid.New(), Title: "Ticket 3", Status: domain.StatusPaymentCompleted,
			Count: 3, Price: &price, Initiator: initiator.ID,
			PurchasingManager: &purchasing.ID, AccountingManager: &accounting.ID,
			CreatedAt: time.Now(),
		},
	}

	page, err := assembler.Page(context.Background(), tickets, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, page.TotalCount)
	require.Len(t, page.Tickets, 3)

	// One round-trip regardless of how many tickets reference how many
	// users, and the id set is deduplicated.
	assert.Equal(t, 1, users.batchCalls)
	assert.ElementsMatch(t, []uuid.UUID{initiator.ID, purchasing.ID, accounting.ID}, users.lastBatch)

	assert.Equal(t, "Alice", page.Tickets[0].Initiator.Name)
	assert.Nil(t, page.Tickets[0].PurchasingManager)
	require.NotNil(t, page.Tickets[1].PurchasingManager)
	assert.Equal(t, "Bob", page.Tickets[1].PurchasingManager.Name)
	require.NotNil(t, page.Tickets[2].AccountingManager)
	assert.Equal(t, "Charlie", page.Tickets[2].AccountingManager.Name)
	assert.Equal(t, domain.RoleAccountingManager, page.Tickets[2].AccountingManager.Role)
}

func TestAssembleEmptyPageSkipsLookup(t *testing.T) {
	users := newFakeUserRepo()
	assembler := NewViewAssembler(users)

	page, err := assembler.Page(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Tickets)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 0, users.batchCalls)
}

func TestAssembleDanglingReferenceFailsWholePage(t *testing.T) {
	initiator := domain.User{ID: uuid.New(), Name: "Alice", Role: domain.RoleInitiator}
	users := newFakeUserRepo(initiator)
	assembler := NewViewAssembler(users)

	tickets := []domain.Ticket{
		{ID: uuid.New(), Title: "Ticket 1", Status: domain.StatusRequested, Count: 1, Initiator: initiator.ID},
		{ID: uuid.New(), Title: "Ticket 2", Status: domain.StatusRequested, Count: 1, Initiator: uuid.New()},
	}

	_, err := assembler.Page(context.Background(), tickets, 2)
	assert.ErrorIs(t, err, domain.ErrDanglingUserRef)
}

func TestAssembleSingleTicket(t *testing.T) {
	initiator := domain.User{ID: uuid.New(), Name: "Alice", Role: domain.RoleInitiator}
	users := newFakeUserRepo(initiator)
	assembler := NewViewAssembler(users)

	ticket := domain.Ticket{
		ID: uuid.New(), Title: "Ticket 1", Description: "paper",
		Status: domain.StatusRequested, Count: 4, Initiator: initiator.ID,
	}

	view, err := assembler.Ticket(context.Background(), ticket)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, view.ID)
	assert.Equal(t, initiator.ID, view.Initiator.ID)
	assert.Equal(t, domain.RoleInitiator, view.Initiator.Role)
	assert.Equal(t, 1, users.batchCalls)
}
