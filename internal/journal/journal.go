package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"ticket-ledger/internal/models"
)

// Repository persists ledger events to the journal table. It is the
// durable form of the audit trail consumed by dashboard tooling.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new journal repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Entry is one persisted ledger event.
type Entry struct {
	models.LedgerEvent
	RecordedAt time.Time `json:"recorded_at"`
}

// Append writes one event to the journal.
func (r *Repository) Append(ev models.LedgerEvent) error {
	var details []byte
	if ev.Details != nil {
		var err error
		details, err = json.Marshal(ev.Details)
		if err != nil {
			return fmt.Errorf("journal append: encode details: %w", err)
		}
	}

	var ticketID sql.NullInt64
	if ev.TicketID != nil {
		ticketID = sql.NullInt64{Int64: int64(*ev.TicketID), Valid: true}
	}

	query := `
		INSERT INTO ledger_events (id, event_type, actor, ticket_id, details, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, ev.ID, string(ev.Type), string(ev.Actor), ticketID, details, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("journal append: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (r *Repository) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, event_type, actor, ticket_id, details, occurred_at, recorded_at
		FROM ledger_events
		ORDER BY occurred_at DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("journal recent: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ByTicket returns every entry touching one ticket, oldest first.
func (r *Repository) ByTicket(ticketID uint64) ([]Entry, error) {
	query := `
		SELECT id, event_type, actor, ticket_id, details, occurred_at, recorded_at
		FROM ledger_events
		WHERE ticket_id = $1
		ORDER BY occurred_at ASC`

	rows, err := r.db.Query(query, int64(ticketID))
	if err != nil {
		return nil, fmt.Errorf("journal by ticket: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry    Entry
			evType   string
			actor    string
			ticketID sql.NullInt64
			details  []byte
		)
		err := rows.Scan(&entry.ID, &evType, &actor, &ticketID, &details, &entry.OccurredAt, &entry.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}

		entry.Type = models.EventType(evType)
		entry.Actor = models.Principal(actor)
		if ticketID.Valid {
			id := uint64(ticketID.Int64)
			entry.TicketID = &id
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, fmt.Errorf("journal scan: decode details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
