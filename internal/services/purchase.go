package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ticket-ledger/internal/models"
)

// Buy atomically exchanges paymentAmount for ownership of id. The
// registry mutation and the buyer's rate-limit counter are committed
// before any value moves; a transfer failure rolls both back so the
// call either commits fully or has no effect. The transfers run with
// the settlement guard asserted, so a payee callback that re-enters the
// ledger fails with ErrReentrantCall whether or not it carries the
// caller's context.
func (l *Ledger) Buy(ctx context.Context, caller models.Principal, id uint64, paymentAmount int64) error {
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
	if !ticket.ForSale {
		return models.ErrNotForSale
	}
	if ticket.Used {
		return models.ErrTicketUsed
	}

	now := l.clock.Now()
	if ticket.EventPassed(now) {
		return models.ErrEventPassed
	}
	if ticket.Owner == caller {
		return models.ErrSelfPurchase
	}

	window := l.store.BuyWindow(caller)
	if window.Expired(now) {
		window = models.BuyWindow{WindowStart: now}
	}
	if window.Count >= models.MaxBuysPerWindow {
		return models.ErrRateLimitExceeded
	}
	if paymentAmount < ticket.Price {
		return models.ErrInsufficientFunds
	}

	seller := ticket.Owner
	settlePrice := ticket.Price
	prevWindow := l.store.BuyWindow(caller)

	// Checks done. Finalize ownership before any value moves.
	ticket.Owner = caller
	ticket.ForSale = false
	window.Count++
	l.store.SetBuyWindow(caller, window)

	rollback := func() {
		ticket.Owner = seller
		ticket.ForSale = true
		l.store.SetBuyWindow(caller, prevWindow)
	}

	sctx := withSettlement(ctx)
	endSettlement := l.beginSettlement()
	defer endSettlement()
	if err := l.payments.Transfer(sctx, caller, l.treasury, paymentAmount); err != nil {
		rollback()
		return fmt.Errorf("escrow payment: %w", err)
	}
	if err := l.payments.Transfer(sctx, l.treasury, seller, settlePrice); err != nil {
		refundErr := l.payments.Transfer(sctx, l.treasury, caller, paymentAmount)
		rollback()
		return errors.Join(fmt.Errorf("pay seller: %w", err), refundErr)
	}
	if excess := paymentAmount - settlePrice; excess > 0 {
		if err := l.payments.Transfer(sctx, l.treasury, caller, excess); err != nil {
			clawbackErr := l.payments.Transfer(sctx, seller, l.treasury, settlePrice)
			refundErr := l.payments.Transfer(sctx, l.treasury, caller, paymentAmount)
			rollback()
			return errors.Join(fmt.Errorf("refund excess: %w", err), clawbackErr, refundErr)
		}
	}

	l.emit(models.EventTicketSold, caller, &id, map[string]string{
		"seller": string(seller),
		"price":  strconv.FormatInt(settlePrice, 10),
	}, now)
	return nil
}
