package store

import (
	"ticket-ledger/internal/models"
)

// Store is the single owned arena of ledger state: the ticket registry,
// role grants, rate-limit counters and the pause flag. It performs no
// locking of its own; the service layer serializes access.
type Store struct {
	tickets    []*models.Ticket
	roles      map[models.Principal]map[models.Role]bool
	mintCounts map[models.Principal]int
	buyWindows map[models.Principal]models.BuyWindow
	paused     bool
}

// New returns an empty store.
func New() *Store {
	return &Store{
		roles:      make(map[models.Principal]map[models.Role]bool),
		mintCounts: make(map[models.Principal]int),
		buyWindows: make(map[models.Principal]models.BuyWindow),
	}
}

// AppendTicket inserts a new ticket record, assigning the next monotonic
// id. IDs start at 0 and are never reused.
func (s *Store) AppendTicket(t *models.Ticket) uint64 {
	t.ID = uint64(len(s.tickets))
	s.tickets = append(s.tickets, t)
	return t.ID
}

// Ticket returns the record for id, or false if it was never minted.
// The returned pointer is the live record; callers must hold the
// service lock while mutating it.
func (s *Store) Ticket(id uint64) (*models.Ticket, bool) {
	if id >= uint64(len(s.tickets)) {
		return nil, false
	}
	return s.tickets[id], true
}

// TicketCount returns the number of tickets ever minted.
func (s *Store) TicketCount() uint64 {
	return uint64(len(s.tickets))
}

// GrantRole records a role grant and reports whether state changed.
func (s *Store) GrantRole(p models.Principal, r models.Role) bool {
	grants, ok := s.roles[p]
	if !ok {
		grants = make(map[models.Role]bool)
		s.roles[p] = grants
	}
	if grants[r] {
		return false
	}
	grants[r] = true
	return true
}

// RevokeRole removes a role grant and reports whether state changed.
func (s *Store) RevokeRole(p models.Principal, r models.Role) bool {
	grants, ok := s.roles[p]
	if !ok || !grants[r] {
		return false
	}
	delete(grants, r)
	return true
}

// HasRole reports whether p currently holds r.
func (s *Store) HasRole(p models.Principal, r models.Role) bool {
	return s.roles[p][r]
}

// MintCount returns the lifetime number of tickets minted to p.
func (s *Store) MintCount(p models.Principal) int {
	return s.mintCounts[p]
}

// IncrementMintCount bumps p's lifetime mint counter. Never decremented.
func (s *Store) IncrementMintCount(p models.Principal) {
	s.mintCounts[p]++
}

// BuyWindow returns p's current purchase window.
func (s *Store) BuyWindow(p models.Principal) models.BuyWindow {
	return s.buyWindows[p]
}

// SetBuyWindow stores p's purchase window.
func (s *Store) SetBuyWindow(p models.Principal, w models.BuyWindow) {
	s.buyWindows[p] = w
}

// Paused reports the global pause flag.
func (s *Store) Paused() bool {
	return s.paused
}

// SetPaused sets the global pause flag.
func (s *Store) SetPaused(v bool) {
	s.paused = v
}
