package services

import (
	"context"
	"fmt"
	"strconv"

	"ticket-ledger/internal/models"
)

// Withdraw sweeps the treasury balance to the calling admin. A zero
// balance is a no-op and emits nothing. Withdraw is not gated by the
// pause flag, so an admin can still drain the treasury while the
// ledger is paused.
func (l *Ledger) Withdraw(ctx context.Context, caller models.Principal) (int64, error) {
	if l.reentrant(ctx) {
		return 0, models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleAdmin); err != nil {
		return 0, err
	}

	amount := l.payments.Balance(l.treasury)
	if amount == 0 {
		return 0, nil
	}

	sctx := withSettlement(ctx)
	endSettlement := l.beginSettlement()
	defer endSettlement()
	if err := l.payments.Transfer(sctx, l.treasury, caller, amount); err != nil {
		return 0, fmt.Errorf("withdraw: %w", err)
	}

	l.emit(models.EventFundsWithdrawn, caller, nil, map[string]string{
		"amount": strconv.FormatInt(amount, 10),
	}, l.clock.Now())
	return amount, nil
}

// RoyaltyInfo returns the royalty recipient and the amount due on a
// secondary sale at salePrice. Pure read; the rate is fixed at 5%.
func (l *Ledger) RoyaltyInfo(id uint64, salePrice int64) (models.Principal, int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.store.Ticket(id); !ok {
		return "", 0, models.ErrTicketNotFound
	}
	return l.royaltyRecipient, models.RoyaltyAmount(salePrice), nil
}
