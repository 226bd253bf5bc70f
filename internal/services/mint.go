package services

import (
	"context"
	"strconv"

	"ticket-ledger/internal/models"
)

// Mint creates a new ticket owned by req.To and returns its id. Caller
// must hold MINTER. Failures leave no partial state.
func (l *Ledger) Mint(ctx context.Context, caller models.Principal, req models.MintRequest) (uint64, error) {
	if l.reentrant(ctx) {
		return 0, models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleMinter); err != nil {
		return 0, err
	}
	if l.store.Paused() {
		return 0, models.ErrSystemPaused
	}

	now := l.clock.Now()
	if err := req.Validate(now); err != nil {
		return 0, err
	}
	if l.store.MintCount(req.To) >= models.MaxMintsPerPrincipal {
		return 0, models.ErrMintCapExceeded
	}

	ticket := &models.Ticket{
		Owner:       req.To,
		EventID:     req.EventID,
		Price:       req.Price,
		MintPrice:   req.Price,
		EventDate:   req.EventDate,
		MetadataRef: req.MetadataRef,
		MintedAt:    now,
	}
	id := l.store.AppendTicket(ticket)
	l.store.IncrementMintCount(req.To)

	l.emit(models.EventTicketMinted, caller, &id, map[string]string{
		"to":       string(req.To),
		"event_id": req.EventID,
		"price":    strconv.FormatInt(req.Price, 10),
	}, now)
	return id, nil
}
