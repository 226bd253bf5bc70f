package services

import (
	"context"

	"ticket-ledger/internal/models"
)

// requireRole is the single permission check used by every privileged
// operation. Callers must hold the ledger lock.
func (l *Ledger) requireRole(p models.Principal, r models.Role) error {
	if !l.store.HasRole(p, r) {
		return models.ErrUnauthorized
	}
	return nil
}

// GrantRole gives principal the role. ADMIN only. Granting a role the
// principal already holds is a no-op and emits nothing.
func (l *Ledger) GrantRole(ctx context.Context, caller, principal models.Principal, role models.Role) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}
	if !role.Valid() {
		return models.ErrInvalidRole
	}
	if principal.IsZero() {
		return models.ErrZeroAddress
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}
	if !l.store.GrantRole(principal, role) {
		return nil
	}

	l.emit(models.EventRoleGranted, caller, nil, map[string]string{
		"principal": string(principal),
		"role":      string(role),
	}, l.clock.Now())
	return nil
}

// RevokeRole removes the role from principal. ADMIN only. Revoking a
// role the principal does not hold is a no-op and emits nothing.
func (l *Ledger) RevokeRole(ctx context.Context, caller, principal models.Principal, role models.Role) error {
	if l.reentrant(ctx) {
		return models.ErrReentrantCall
	}
	if !role.Valid() {
		return models.ErrInvalidRole
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireRole(caller, models.RoleAdmin); err != nil {
		return err
	}
	if !l.store.RevokeRole(principal, role) {
		return nil
	}

	l.emit(models.EventRoleRevoked, caller, nil, map[string]string{
		"principal": string(principal),
		"role":      string(role),
	}, l.clock.Now())
	return nil
}

// HasRole reports whether principal currently holds role.
func (l *Ledger) HasRole(principal models.Principal, role models.Role) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.HasRole(principal, role)
}
