package subtrack

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a subscription.
type Status string

const (
	// StatusActive means the subscription is live and counted towards the monthly cost.
	StatusActive Status = "active"
	// StatusCancelled means the subscription has been cancelled and is counted as savings.
	StatusCancelled Status = "cancelled"
)

// Subscription represents a single recurring paid service.
// Cancelling keeps the renewal date in place so you can still see when the
// subscription was last due.
type Subscription struct {
	ID          string
	Name        string
	Cost        decimal.Decimal
	RenewalDate time.Time
	Status      Status
	CreatedAt   time.Time
}

// NewSubscription creates an active subscription.
// The name must be non-empty, the cost non-negative and the renewal date
// set; violations return ErrInvalidInput. The renewal date is normalized
// to midnight UTC.
func NewSubscription(name string, cost decimal.Decimal, renewalDate time.Time) (*Subscription, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: cost %s must not be negative", ErrInvalidInput, cost)
	}
	if renewalDate.IsZero() {
		return nil, fmt.Errorf("%w: renewal date must be set", ErrInvalidInput)
	}

	return &Subscription{
		ID:          uuid.NewString(),
		Name:        name,
		Cost:        cost,
		RenewalDate: StartOfDay(renewalDate),
		Status:      StatusActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Cancel marks the subscription cancelled. Cancelling an already cancelled
// subscription is a no-op.
func (s *Subscription) Cancel() {
	s.Status = StatusCancelled
}

// Renew reactivates the subscription and moves its renewal date.
// Renewing an active subscription is valid; only the date changes.
func (s *Subscription) Renew(newRenewalDate time.Time) error {
	if newRenewalDate.IsZero() {
		return fmt.Errorf("%w: renewal date must be set", ErrInvalidInput)
	}
	s.Status = StatusActive
	s.RenewalDate = StartOfDay(newRenewalDate)
	return nil
}

// IsActive reports whether the subscription is currently active.
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

// IsCancelled reports whether the subscription has been cancelled.
func (s *Subscription) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// DueBy reports whether the renewal date falls on or before the given day.
func (s *Subscription) DueBy(today time.Time) bool {
	return !s.RenewalDate.After(StartOfDay(today))
}

func (s *Subscription) clone() *Subscription {
	c := *s
	return &c
}
