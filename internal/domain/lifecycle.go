package domain

import "fmt"

// Operation is a requested change to a ticket. The concrete types carry
// the operation payload; the transition policy lives in the rules table.
type Operation interface {
	kind() opKind
}

type opKind int

const (
	opEditTitle opKind = iota + 1
	opEditDescription
	opCancel
	opConfirm
	opDeny
	opMarkAsPaid
)

// EditTitle replaces the ticket title.
type EditTitle struct {
	Title string
}

// EditDescription replaces the ticket description. The description doubles
// as a comment channel, so it stays editable throughout the lifecycle.
type EditDescription struct {
	Description string
}

// Cancel moves a requested ticket to Cancelled.
type Cancel struct{}

// Confirm approves a requested ticket and fixes its price.
type Confirm struct {
	Price float64
}

// Deny rejects a requested ticket.
type Deny struct{}

// MarkAsPaid completes payment on a confirmed ticket.
type MarkAsPaid struct{}

func (EditTitle) kind() opKind       { return opEditTitle }
func (EditDescription) kind() opKind { return opEditDescription }
func (Cancel) kind() opKind          { return opCancel }
func (Confirm) kind() opKind         { return opConfirm }
func (Deny) kind() opKind            { return opDeny }
func (MarkAsPaid) kind() opKind      { return opMarkAsPaid }

// rule is one row of the transition policy: which status the ticket must
// be in, who may act, which sentinel names the rejection and how the
// ticket is mutated once both guards pass.
type rule struct {
	status Status // zero value means any status
	actor  func(actor *User, t *Ticket) bool
	reject error
	apply  func(t *Ticket, actor *User, op Operation)
}

func byInitiator(actor *User, t *Ticket) bool {
	return actor.ID == t.Initiator
}

func byRole(role Role) func(actor *User, t *Ticket) bool {
	return func(actor *User, _ *Ticket) bool {
		return actor.Role == role
	}
}

var rules = map[opKind]rule{
	opEditTitle: {
		status: StatusRequested,
		actor:  byInitiator,
		reject: ErrTicketCannotBeModified,
		apply: func(t *Ticket, _ *User, op Operation) {
			t.Title = op.(EditTitle).Title
		},
	},
	opEditDescription: {
		// No status or actor guard: usable as a free-form annotation
		// channel on any ticket, terminal ones included.
		apply: func(t *Ticket, _ *User, op Operation) {
			t.Description = op.(EditDescription).Description
		},
	},
	opCancel: {
		status: StatusRequested,
		actor:  byInitiator,
		reject: ErrTicketCannotBeCancelled,
		apply: func(t *Ticket, _ *User, _ Operation) {
			t.Status = StatusCancelled
		},
	},
	opConfirm: {
		status: StatusRequested,
		actor:  byRole(RolePurchasingManager),
		reject: ErrTicketCannotBeConfirmed,
		apply: func(t *Ticket, actor *User, op Operation) {
			price := op.(Confirm).Price
			actorID := actor.ID
			t.Status = StatusConfirmed
			t.Price = &price
			t.PurchasingManager = &actorID
		},
	},
	opDeny: {
		status: StatusRequested,
		actor:  byRole(RolePurchasingManager),
		reject: ErrTicketCannotBeDenied,
		apply: func(t *Ticket, actor *User, _ Operation) {
			actorID := actor.ID
			t.Status = StatusDenied
			t.PurchasingManager = &actorID
		},
	},
	opMarkAsPaid: {
		status: StatusConfirmed,
		actor:  byRole(RoleAccountingManager),
		reject: ErrTicketCannotBePaid,
		apply: func(t *Ticket, actor *User, _ Operation) {
			actorID := actor.ID
			t.Status = StatusPaymentCompleted
			t.AccountingManager = &actorID
		},
	},
}

// Apply runs op against a copy of the ticket and returns the new state.
// A rejected operation returns the named rejection and the zero Ticket;
// the caller's ticket is never touched, so there is no partial mutation.
func Apply(t Ticket, actor *User, op Operation) (Ticket, error) {
	r, ok := rules[op.kind()]
	if !ok {
		return Ticket{}, fmt.Errorf("unknown operation %T", op)
	}
	if r.status != 0 && t.Status != r.status {
		return Ticket{}, r.reject
	}
	if r.actor != nil && !r.actor(actor, &t) {
		return Ticket{}, r.reject
	}
	r.apply(&t, actor, op)
	return t, nil
}
