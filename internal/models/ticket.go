package models

import "time"

// Ledger rules. Prices are in cents.
const (
	// MinPrice is the lowest price a ticket can be minted or listed at.
	MinPrice int64 = 100

	// MaxResaleMultiplier caps a resale listing at this multiple of the
	// original mint price.
	MaxResaleMultiplier int64 = 5

	// ResaleCooldown is the minimum time between successive listings of
	// the same ticket. The first listing after mint is exempt.
	ResaleCooldown = time.Hour

	// MaxMintsPerPrincipal is the lifetime cap on tickets minted to one
	// principal.
	MaxMintsPerPrincipal = 100

	// MaxBuysPerWindow caps purchases per principal inside one buy window.
	MaxBuysPerWindow = 10

	// BuyWindowDuration is the length of the fixed purchase-count window.
	BuyWindowDuration = time.Hour

	// RoyaltyBps is the secondary-sale royalty in basis points (5%).
	RoyaltyBps int64 = 500
)

// Ticket is the authoritative ownership record for one event admission
// right. IDs are allocated monotonically starting at 0 and never reused.
type Ticket struct {
	ID          uint64    `json:"id"`
	Owner       Principal `json:"owner"`
	EventID     string    `json:"event_id"`
	Price       int64     `json:"price"` // current asking price in cents
	MintPrice   int64     `json:"mint_price"`
	ForSale     bool      `json:"for_sale"`
	EventDate   time.Time `json:"event_date"`
	Used        bool      `json:"used"`
	MetadataRef string    `json:"metadata_ref"`

	// LastResale is the time of the most recent listing; zero means the
	// ticket has never been listed since mint.
	LastResale time.Time `json:"last_resale,omitempty"`

	MintedAt time.Time `json:"minted_at"`
}

// MaxResalePrice returns the highest price this ticket may be listed at.
func (t *Ticket) MaxResalePrice() int64 {
	return t.MintPrice * MaxResaleMultiplier
}

// EventPassed reports whether the event date is no longer in the future.
func (t *Ticket) EventPassed(now time.Time) bool {
	return !t.EventDate.After(now)
}

// CooldownRemaining returns how long until the ticket may be listed
// again. Zero means the cooldown is satisfied (or never started).
func (t *Ticket) CooldownRemaining(now time.Time) time.Duration {
	if t.LastResale.IsZero() {
		return 0
	}
	remaining := ResaleCooldown - now.Sub(t.LastResale)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BuyWindow tracks purchases by one principal inside a fixed one-hour
// window. The window resets on first access after expiry rather than
// sliding.
type BuyWindow struct {
	WindowStart time.Time
	Count       int
}

// Expired reports whether the window should be reset at the given time.
func (w BuyWindow) Expired(now time.Time) bool {
	return w.WindowStart.IsZero() || now.Sub(w.WindowStart) >= BuyWindowDuration
}

// RoyaltyAmount computes the royalty due on a secondary sale price.
func RoyaltyAmount(salePrice int64) int64 {
	return salePrice * RoyaltyBps / 10000
}
