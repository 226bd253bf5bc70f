package models

import "errors"

// Ledger errors. Every failed operation aborts with zero mutation and
// returns (or wraps) exactly one of these.
var (
	// Authorization
	ErrUnauthorized = errors.New("caller lacks required role")
	ErrNotOwner     = errors.New("caller is not the ticket owner")

	// Not-found
	ErrTicketNotFound = errors.New("ticket not found")

	// State-conflict
	ErrTicketUsed   = errors.New("ticket already used")
	ErrNotForSale   = errors.New("ticket not for sale")
	ErrAlreadyUsed  = errors.New("ticket already validated")
	ErrSystemPaused = errors.New("ledger is paused")
	ErrSelfPurchase = errors.New("cannot buy own ticket")

	// Temporal
	ErrEventInPast    = errors.New("event date is in the past")
	ErrEventPassed    = errors.New("event has already passed")
	ErrCooldownActive = errors.New("resale cooldown active")

	// Bound-violation
	ErrZeroAddress       = errors.New("zero principal")
	ErrPriceTooLow       = errors.New("price below minimum")
	ErrPriceOutOfRange   = errors.New("resale price out of range")
	ErrMintCapExceeded   = errors.New("lifetime mint cap exceeded")
	ErrRateLimitExceeded = errors.New("buy rate limit exceeded")
	ErrInsufficientFunds = errors.New("payment below asking price")

	// Reentrancy
	ErrReentrantCall = errors.New("reentrant call rejected")

	ErrInvalidRole = errors.New("invalid role")
)
