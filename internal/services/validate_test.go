package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-ledger/internal/models"
)

func TestValidate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.listedTicket(t, alice, 1_000, 2_000)
	require.NoError(t, f.ledger.Validate(ctx, validator, id))

	ticket, err := f.ledger.Ticket(id)
	require.NoError(t, err)
	assert.True(t, ticket.Used)
	assert.False(t, ticket.ForSale, "validation delists the ticket")

	validated := f.events.ofType(models.EventTicketValidated)
	require.Len(t, validated, 1)
	assert.Equal(t, validator, validated[0].Actor)
}

func TestValidateRequiresValidatorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.mintTo(t, alice, 1_000)

	assert.ErrorIs(t, f.ledger.Validate(ctx, alice, id), models.ErrUnauthorized)
	assert.ErrorIs(t, f.ledger.Validate(ctx, admin, id), models.ErrUnauthorized)
}

func TestValidateIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.mintTo(t, alice, 1_000)
	require.NoError(t, f.ledger.Validate(ctx, validator, id))

	// A used ticket can never be validated, listed or bought again.
	assert.ErrorIs(t, f.ledger.Validate(ctx, validator, id), models.ErrAlreadyUsed)
	assert.ErrorIs(t, f.ledger.Resell(ctx, alice, id, 2_000), models.ErrTicketUsed)

	f.book.Deposit(bob, 10_000)
	assert.ErrorIs(t, f.ledger.Buy(ctx, bob, id, 2_000), models.ErrNotForSale)
}

func TestValidateNotFound(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.ledger.Validate(context.Background(), validator, 0), models.ErrTicketNotFound)
}

func TestValidateWhilePaused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.mintTo(t, alice, 1_000)
	require.NoError(t, f.ledger.Pause(ctx, admin))

	assert.ErrorIs(t, f.ledger.Validate(ctx, validator, id), models.ErrSystemPaused)
}
