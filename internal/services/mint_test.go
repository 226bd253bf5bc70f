package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-ledger/internal/models"
)

func TestMint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	eventDate := baseTime.Add(30 * 24 * time.Hour)
	id, err := f.ledger.Mint(ctx, minter, models.MintRequest{
		To:          alice,
		MetadataRef: "ipfs://first",
		EventID:     "concert-1",
		Price:       1_000,
		EventDate:   eventDate,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	ticket, err := f.ledger.Ticket(id)
	require.NoError(t, err)
	assert.Equal(t, alice, ticket.Owner)
	assert.Equal(t, int64(1_000), ticket.Price)
	assert.Equal(t, int64(1_000), ticket.MintPrice)
	assert.False(t, ticket.ForSale)
	assert.False(t, ticket.Used)
	assert.True(t, ticket.LastResale.IsZero())
	assert.Equal(t, eventDate, ticket.EventDate)

	assert.Equal(t, 1, f.ledger.MintCount(alice))

	minted := f.events.ofType(models.EventTicketMinted)
	require.Len(t, minted, 1)
	assert.Equal(t, minter, minted[0].Actor)
	require.NotNil(t, minted[0].TicketID)
	assert.Equal(t, uint64(0), *minted[0].TicketID)
}

func TestMintIDsStrictlyIncreasing(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 5; i++ {
		id := f.mintTo(t, alice, 1_000)
		assert.Equal(t, uint64(i), id)
	}
	assert.Equal(t, uint64(5), f.ledger.TicketCount())
}

func TestMintRequiresMinterRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Mint(context.Background(), alice, models.MintRequest{
		To:        bob,
		Price:     1_000,
		EventDate: baseTime.Add(time.Hour),
	})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Equal(t, uint64(0), f.ledger.TicketCount())
}

func TestMintPreconditions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.MintRequest
		wantErr error
	}{
		{
			name:    "zero principal",
			req:     models.MintRequest{To: "", Price: 1_000, EventDate: baseTime.Add(time.Hour)},
			wantErr: models.ErrZeroAddress,
		},
		{
			name:    "price below minimum",
			req:     models.MintRequest{To: alice, Price: models.MinPrice - 1, EventDate: baseTime.Add(time.Hour)},
			wantErr: models.ErrPriceTooLow,
		},
		{
			name:    "event in the past",
			req:     models.MintRequest{To: alice, Price: 1_000, EventDate: baseTime.Add(-time.Minute)},
			wantErr: models.ErrEventInPast,
		},
		{
			name:    "event exactly now",
			req:     models.MintRequest{To: alice, Price: 1_000, EventDate: baseTime},
			wantErr: models.ErrEventInPast,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ledger.Mint(ctx, minter, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// No partial state from any failure.
	assert.Equal(t, uint64(0), f.ledger.TicketCount())
	assert.Equal(t, 0, f.ledger.MintCount(alice))
}

func TestMintLifetimeCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < models.MaxMintsPerPrincipal; i++ {
		f.mintTo(t, carol, 1_000)
	}
	require.Equal(t, models.MaxMintsPerPrincipal, f.ledger.MintCount(carol))

	_, err := f.ledger.Mint(ctx, minter, models.MintRequest{
		To:        carol,
		Price:     1_000,
		EventDate: baseTime.Add(time.Hour),
	})
	assert.ErrorIs(t, err, models.ErrMintCapExceeded)

	// The cap is per recipient, not global.
	_, err = f.ledger.Mint(ctx, minter, models.MintRequest{
		To:        bob,
		Price:     1_000,
		EventDate: baseTime.Add(time.Hour),
	})
	assert.NoError(t, err)
}

func TestMintWhilePaused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ledger.Pause(ctx, admin))

	_, err := f.ledger.Mint(ctx, minter, models.MintRequest{
		To:        alice,
		Price:     1_000,
		EventDate: baseTime.Add(time.Hour),
	})
	assert.ErrorIs(t, err, models.ErrSystemPaused)
}
