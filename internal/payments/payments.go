package payments

import (
	"context"
	"fmt"
	"sync"

	"ticket-ledger/internal/models"
)

// TransferHook is invoked after a transfer credits the recipient,
// standing in for the receiver-side callback of a real payment rail. A
// hook error aborts and reverses the transfer.
type TransferHook func(ctx context.Context, from, to models.Principal, amount int64) error

// Book is an in-memory account book. It is safe for concurrent use.
type Book struct {
	mu       sync.Mutex
	balances map[models.Principal]int64
	hook     TransferHook
}

// NewBook returns an empty account book.
func NewBook() *Book {
	return &Book{balances: make(map[models.Principal]int64)}
}

// SetTransferHook installs a receiver callback. Tests use this to
// simulate a malicious payee calling back into the ledger mid-transfer.
func (b *Book) SetTransferHook(hook TransferHook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hook = hook
}

// Deposit credits amount to p out of thin air (external funding).
func (b *Book) Deposit(p models.Principal, amount int64) {
	if amount <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[p] += amount
}

// Balance returns p's current balance.
func (b *Book) Balance(p models.Principal) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[p]
}

// Transfer moves amount from one account to the other. The installed
// hook runs after the credit; if it fails the transfer is reversed and
// its error returned.
func (b *Book) Transfer(ctx context.Context, from, to models.Principal, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer: negative amount %d", amount)
	}
	if amount == 0 {
		return nil
	}

	b.mu.Lock()
	if b.balances[from] < amount {
		b.mu.Unlock()
		return fmt.Errorf("transfer: %s holds insufficient balance", from)
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	hook := b.hook
	b.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, from, to, amount); err != nil {
			b.mu.Lock()
			b.balances[to] -= amount
			b.balances[from] += amount
			b.mu.Unlock()
			return fmt.Errorf("transfer rejected by receiver: %w", err)
		}
	}

	return nil
}
