package services

import (
	"context"
	"strconv"

	"ticket-ledger/internal/models"
)

// Resell lists a ticket for sale at newPrice. Only the current owner
// may list; price is bounded by [MinPrice, 5x mint price]; successive
// listings of the same ticket must be at least one hour apart (the
// first listing after mint is exempt).
func (l *Ledger) Resell(ctx context.Context, caller models.Principal, id uint64, newPrice int64) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store.Paused() {
		return models.ErrSystemPaused
	}

	ticket, ok := l.store.Ticket(id)
	if !ok {
		return models.ErrTicketNotFound
	}
	if ticket.Owner != caller {
		return models.ErrNotOwner
	}
	if ticket.Used {
		return models.ErrTicketUsed
	}

	now := l.clock.Now()
	if ticket.EventPassed(now) {
		return models.ErrEventPassed
	}
	if ticket.CooldownRemaining(now) > 0 {
		return models.ErrCooldownActive
	}
	if newPrice < models.MinPrice || newPrice > ticket.MaxResalePrice() {
		return models.ErrPriceOutOfRange
	}

	ticket.Price = newPrice
	ticket.ForSale = true
	ticket.LastResale = now

	l.emit(models.EventTicketListed, caller, &id, map[string]string{
		"price": strconv.FormatInt(newPrice, 10),
	}, now)
	return nil
}
