package services

import (
	"context"

	"ticket-ledger/internal/models"
)

// Validate marks a ticket as used at the venue. Caller must hold
// VALIDATOR. The transition is terminal: a used ticket can never be
// listed, bought or validated again.
func (l *Ledger) Validate(ctx context.Context, caller models.Principal, id uint64) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleValidator); err != nil {
		return err
	}
	if l.store.Paused() {
		return models.ErrSystemPaused
	}

	ticket, ok := l.store.Ticket(id)
	if !ok {
		return models.ErrTicketNotFound
	}
	if ticket.Used {
		return models.ErrAlreadyUsed
	}

	ticket.Used = true
	ticket.ForSale = false

	l.emit(models.EventTicketValidated, caller, &id, nil, l.clock.Now())
	return nil
}
