package services

import (
	"context"

	"ticket-ledger/internal/models"
)

// Pause halts all ticket mutations. ADMIN only. Pausing an already
// paused ledger is a no-op and emits nothing.
func (l *Ledger) Pause(ctx context.Context, caller models.Principal) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}
	if l.store.Paused() {
		return nil
	}

	l.store.SetPaused(true)
	l.emit(models.EventLedgerPaused, caller, nil, nil, l.clock.Now())
	return nil
}

// Unpause restores normal operation. ADMIN only. Unpausing a running
// ledger is a no-op and emits nothing.
func (l *Ledger) Unpause(ctx context.Context, caller models.Principal) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}
	if !l.store.Paused() {
		return nil
	}

	l.store.SetPaused(false)
	l.emit(models.EventLedgerUnpaused, caller, nil, nil, l.clock.Now())
	return nil
}

// Paused reports the global pause flag.
func (l *Ledger) Paused() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Paused()
}
