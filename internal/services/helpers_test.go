package services

import (
	"context"
	"testing"
	"time"

	"ticket-ledger/internal/clock"
	"ticket-ledger/internal/models"
	"ticket-ledger/internal/payments"
)

const (
	admin     = models.Principal("admin")
	minter    = models.Principal("minter")
	validator = models.Principal("validator")
	alice     = models.Principal("alice")
	bob       = models.Principal("bob")
	carol     = models.Principal("carol")
)

var baseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// recorder collects emitted events for assertions.
type recorder struct {
	events []models.LedgerEvent
}

func (r *recorder) Emit(ev models.LedgerEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) ofType(t models.EventType) []models.LedgerEvent {
	var out []models.LedgerEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

type fixture struct {
	ledger *Ledger
	book   *payments.Book
	clock  *clock.Mock
	events *recorder
}

// newFixture builds a ledger with admin seeded, minter and validator
// roles granted, and a mock clock at baseTime.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		book:   payments.NewBook(),
		clock:  clock.NewMock(baseTime),
		events: &recorder{},
	}
	f.ledger = NewLedger(admin, admin, f.book,
		WithClock(f.clock),
		WithEmitter(f.events),
	)

	ctx := context.Background()
	if err := f.ledger.GrantRole(ctx, admin, minter, models.RoleMinter); err != nil {
		t.Fatalf("grant minter: %v", err)
	}
	if err := f.ledger.GrantRole(ctx, admin, validator, models.RoleValidator); err != nil {
		t.Fatalf("grant validator: %v", err)
	}

	return f
}

// mintTo mints a ticket with sensible defaults and returns its id.
func (f *fixture) mintTo(t *testing.T, to models.Principal, price int64) uint64 {
	t.Helper()

	id, err := f.ledger.Mint(context.Background(), minter, models.MintRequest{
		To:          to,
		MetadataRef: "ipfs://ticket-meta",
		EventID:     "concert-1",
		Price:       price,
		EventDate:   f.clock.Now().Add(30 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return id
}

// listedTicket mints a ticket to owner and lists it at askPrice.
func (f *fixture) listedTicket(t *testing.T, owner models.Principal, mintPrice, askPrice int64) uint64 {
	t.Helper()

	id := f.mintTo(t, owner, mintPrice)
	if err := f.ledger.Resell(context.Background(), owner, id, askPrice); err != nil {
		t.Fatalf("resell: %v", err)
	}
	return id
}
