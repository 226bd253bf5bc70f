package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMaxResalePrice(t *testing.T) {
	ticket := &Ticket{MintPrice: 1_000}
	assert.Equal(t, int64(5_000), ticket.MaxResalePrice())
}

func TestEventPassed(t *testing.T) {
	future := &Ticket{EventDate: now.Add(time.Minute)}
	assert.False(t, future.EventPassed(now))

	past := &Ticket{EventDate: now.Add(-time.Minute)}
	assert.True(t, past.EventPassed(now))

	// An event happening exactly now has passed.
	exact := &Ticket{EventDate: now}
	assert.True(t, exact.EventPassed(now))
}

func TestCooldownRemaining(t *testing.T) {
	never := &Ticket{}
	assert.Zero(t, never.CooldownRemaining(now), "first listing after mint is exempt")

	recent := &Ticket{LastResale: now.Add(-10 * time.Minute)}
	assert.Equal(t, 50*time.Minute, recent.CooldownRemaining(now))

	elapsed := &Ticket{LastResale: now.Add(-ResaleCooldown)}
	assert.Zero(t, elapsed.CooldownRemaining(now))
}

func TestBuyWindowExpired(t *testing.T) {
	assert.True(t, BuyWindow{}.Expired(now), "zero window counts as expired")

	open := BuyWindow{WindowStart: now.Add(-30 * time.Minute)}
	assert.False(t, open.Expired(now))

	stale := BuyWindow{WindowStart: now.Add(-BuyWindowDuration)}
	assert.True(t, stale.Expired(now))
}

func TestRoyaltyAmount(t *testing.T) {
	assert.Equal(t, int64(250), RoyaltyAmount(5_000))
	assert.Equal(t, int64(0), RoyaltyAmount(0))
	// Integer division truncates sub-cent royalties.
	assert.Equal(t, int64(0), RoyaltyAmount(19))
}

func TestMintRequestValidate(t *testing.T) {
	valid := MintRequest{To: "alice", Price: MinPrice, EventDate: now.Add(time.Hour)}
	assert.NoError(t, valid.Validate(now))

	tests := []struct {
		name string
		req  MintRequest
		want error
	}{
		{"zero principal", MintRequest{Price: MinPrice, EventDate: now.Add(time.Hour)}, ErrZeroAddress},
		{"price too low", MintRequest{To: "alice", Price: MinPrice - 1, EventDate: now.Add(time.Hour)}, ErrPriceTooLow},
		{"event in past", MintRequest{To: "alice", Price: MinPrice, EventDate: now.Add(-time.Hour)}, ErrEventInPast},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.req.Validate(now), tc.want)
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMinter.Valid())
	assert.True(t, RoleValidator.Valid())
	assert.False(t, Role("OPERATOR").Valid())
	assert.False(t, Role("").Valid())
}
