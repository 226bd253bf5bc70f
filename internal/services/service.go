package services

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"ticket-ledger/internal/clock"
	"ticket-ledger/internal/models"
	"ticket-ledger/internal/payments"
	"ticket-ledger/internal/store"
)

// Payments settles value transfers for purchases and withdrawals.
// Implementations may call back into arbitrary code on the receiving
// side; the ledger guards itself against reentry during settlement.
type Payments interface {
	Transfer(ctx context.Context, from, to models.Principal, amount int64) error
	Balance(p models.Principal) int64
}

var _ Payments = (*payments.Book)(nil)

// Ledger is the ticket-ownership ledger. One global mutex serializes
// mutating calls; the store also carries cross-ticket counters, so
// per-ticket locking would not make the critical sections independent.
type Ledger struct {
	mu       sync.RWMutex
	settling atomic.Uint64
	store    *store.Store
	clock    clock.Clock
	payments Payments
	emitter  Emitter

	treasury         models.Principal
	royaltyRecipient models.Principal
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the system clock.
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithEmitter installs an event emitter.
func WithEmitter(e Emitter) Option {
	return func(l *Ledger) {
		l.emitter = e
	}
}

// DefaultTreasury is the ledger's own settlement account.
const DefaultTreasury models.Principal = "ledger:treasury"

// NewLedger constructs a ledger with admin seeded as ADMIN and the
// royalty recipient fixed for the lifetime of the instance.
func NewLedger(admin, royaltyRecipient models.Principal, pay Payments, opts ...Option) *Ledger {
	l := &Ledger{
		store:            store.New(),
		clock:            clock.NewSystem(),
		payments:         pay,
		emitter:          NopEmitter{},
		treasury:         DefaultTreasury,
		royaltyRecipient: royaltyRecipient,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.store.GrantRole(admin, models.RoleAdmin)
	return l
}

// settlementKey marks a context as running inside the value-transfer
// step of a purchase or withdrawal. Any mutating call arriving on such
// a context is a reentrant callback: ledger state is already final, so
// it is rejected outright.
type settlementKey struct{}

func withSettlement(ctx context.Context) context.Context {
	return context.WithValue(ctx, settlementKey{}, true)
}

func inSettlement(ctx context.Context) bool {
	v, _ := ctx.Value(settlementKey{}).(bool)
	return v
}

// reentrant reports whether a mutating call must be rejected with
// ErrReentrantCall. The goroutine check catches callbacks that do not
// carry the settlement context: a transfer hook that calls back with a
// fresh context would otherwise block on l.mu forever, since the lock
// is held for the whole settlement. Settlement runs synchronously, so
// such a callback arrives on the settling goroutine itself. Calls from
// other goroutines queue on the lock as usual.
func (l *Ledger) reentrant(ctx context.Context) bool {
	if inSettlement(ctx) {
		return true
	}
	gid := l.settling.Load()
	return gid != 0 && gid == goroutineID()
}

// beginSettlement records the settling goroutine for the duration of
// external value transfers. Caller must hold l.mu; the returned func
// clears the record and must run before the lock is released.
func (l *Ledger) beginSettlement() func() {
	l.settling.Store(goroutineID())
	return func() { l.settling.Store(0) }
}

// goroutineID extracts the current goroutine's id from the stack
// header ("goroutine N [running]:"). Ids start at 1, so 0 is free as
// the no-settlement sentinel.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (l *Ledger) emit(typ models.EventType, actor models.Principal, ticketID *uint64, details map[string]string, at time.Time) {
	l.emitter.Emit(models.LedgerEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		Actor:      actor,
		TicketID:   ticketID,
		Details:    details,
		OccurredAt: at,
	})
}

// Ticket returns a snapshot of the record for id.
func (l *Ledger) Ticket(id uint64) (models.Ticket, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.store.Ticket(id)
	if !ok {
		return models.Ticket{}, models.ErrTicketNotFound
	}
	return *t, nil
}

// OwnerOf returns the current owner of id.
func (l *Ledger) OwnerOf(id uint64) (models.Principal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.store.Ticket(id)
	if !ok {
		return "", models.ErrTicketNotFound
	}
	return t.Owner, nil
}

// TicketCount returns the number of tickets ever minted.
func (l *Ledger) TicketCount() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.TicketCount()
}

// MintCount returns p's lifetime mint counter.
func (l *Ledger) MintCount(p models.Principal) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.MintCount(p)
}

// BuysInWindow returns how many purchases p has made in its current
// window. A window that has expired but not yet been reset counts as
// empty.
func (l *Ledger) BuysInWindow(p models.Principal) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	w := l.store.BuyWindow(p)
	if w.Expired(l.clock.Now()) {
		return 0
	}
	return w.Count
}
