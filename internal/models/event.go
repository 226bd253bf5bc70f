package models

import "time"

// EventType names the kind of ledger event.
type EventType string

// One event is emitted per successful mutating call; together they form
// the ledger's audit trail.
const (
	EventTicketMinted    EventType = "ticket_minted"
	EventTicketListed    EventType = "ticket_listed"
	EventTicketSold      EventType = "ticket_sold"
	EventTicketValidated EventType = "ticket_validated"
	EventRoleGranted     EventType = "role_granted"
	EventRoleRevoked     EventType = "role_revoked"
	EventLedgerPaused    EventType = "ledger_paused"
	EventLedgerUnpaused  EventType = "ledger_unpaused"
	EventFundsWithdrawn  EventType = "funds_withdrawn"
)

// LedgerEvent records one successful mutation.
type LedgerEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Actor      Principal         `json:"actor"`
	TicketID   *uint64           `json:"ticket_id,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
