package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixed(instant)

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now(), "fixed clock never moves")
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMock(start)

	assert.Equal(t, start, m.Now())

	m.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}

func TestSystemClockIsUTC(t *testing.T) {
	now := NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
}
