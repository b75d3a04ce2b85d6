package subtrack

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSubscription(t *testing.T) {
	renewal := day(2025, time.January, 1)
	sub, err := NewSubscription("Netflix", decimal.RequireFromString("15.00"), renewal)
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Netflix", sub.Name)
	assert.True(t, sub.Cost.Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, renewal, sub.RenewalDate)
	assert.True(t, sub.IsActive())
	assert.False(t, sub.IsCancelled())
}

func TestNewSubscriptionValidation(t *testing.T) {
	renewal := day(2025, time.January, 1)

	// Negative cost
	_, err := NewSubscription("Netflix", decimal.NewFromInt(-5), renewal)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Empty name
	_, err = NewSubscription("", decimal.NewFromInt(5), renewal)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Missing renewal date
	_, err = NewSubscription("Netflix", decimal.NewFromInt(5), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Zero cost is allowed
	_, err = NewSubscription("FreeTier", decimal.Zero, renewal)
	assert.NoError(t, err)
}

func TestNewSubscriptionNormalizesDate(t *testing.T) {
	noon := time.Date(2025, time.January, 1, 12, 30, 0, 0, time.FixedZone("EET", 2*60*60))
	sub, err := NewSubscription("Netflix", decimal.NewFromInt(15), noon)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.January, 1), sub.RenewalDate)
}

func TestSubscriptionCancelAndRenew(t *testing.T) {
	today := day(2025, time.January, 1)
	sub, err := NewSubscription("Netflix", decimal.NewFromInt(15), today)
	require.NoError(t, err)
	assert.True(t, sub.IsActive())

	sub.Cancel()
	assert.True(t, sub.IsCancelled())

	// Cancelling again is a no-op
	sub.Cancel()
	assert.True(t, sub.IsCancelled())

	// Renewing reactivates and moves the date
	next := NextRenewalDate(today)
	require.NoError(t, sub.Renew(next))
	assert.True(t, sub.IsActive())
	assert.Equal(t, today.AddDate(0, 0, 30), sub.RenewalDate)

	// Renewing an active subscription only moves the date
	require.NoError(t, sub.Renew(next.AddDate(0, 0, 30)))
	assert.True(t, sub.IsActive())
	assert.Equal(t, next.AddDate(0, 0, 30), sub.RenewalDate)

	// A zero date is rejected without touching the record
	err = sub.Renew(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, next.AddDate(0, 0, 30), sub.RenewalDate)
}

func TestSubscriptionDueBy(t *testing.T) {
	today := day(2025, time.January, 15)
	sub, err := NewSubscription("Netflix", decimal.NewFromInt(15), today)
	require.NoError(t, err)

	assert.True(t, sub.DueBy(today))
	assert.True(t, sub.DueBy(today.AddDate(0, 0, 1)))
	assert.False(t, sub.DueBy(today.AddDate(0, 0, -1)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 1), parsed)

	_, err = ParseDate("06/01/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
