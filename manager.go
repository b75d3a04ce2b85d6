package subtrack

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Manager is the central component of subtrack.
// It is the registry of subscriptions: it owns the records, applies
// lifecycle transitions, and computes cost summaries. The user of the
// library creates a Manager and drives it from a CLI or from tests.
// The Manager is safe for use alongside its background sweep.
type Manager struct {
	store   Store
	history EventLog
	metrics Metrics
	log     *zap.Logger
	clock   Clock

	mu       sync.Mutex
	sweeping bool
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewManager creates a new Manager.
// It takes a context and a list of ManagerOptions.
// The context is used to shut down the Manager and its background sweep.
func NewManager(ctx context.Context, opts ...ManagerOption) *Manager {
	managerCtx, cancel := context.WithCancel(ctx)
	m := &Manager{
		ctx:    managerCtx,
		cancel: cancel,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewInMemoryStore()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.clock == nil {
		m.clock = defaultClock
	}

	return m
}

// Add creates a new active subscription and registers it under its name.
// It fails with ErrInvalidInput for an empty name, negative cost or unset
// renewal date, and with ErrDuplicateName if the name is already taken.
// It returns the new subscription.
func (m *Manager) Add(ctx context.Context, name string, cost decimal.Decimal, renewalDate time.Time) (*Subscription, error) {
	sub, err := NewSubscription(name, cost, renewalDate)
	if err != nil {
		return nil, err
	}

	if err := m.store.Put(ctx, sub); err != nil {
		return nil, err
	}

	m.recordEvent(ctx, sub, EventAdded)
	m.log.Info("subscription added",
		zap.String("name", sub.Name),
		zap.String("cost", sub.Cost.String()),
		zap.Time("renewal_date", sub.RenewalDate))
	return sub, nil
}

// Remove deletes a subscription by name.
// It fails with ErrNotFound if no subscription with that name exists.
func (m *Manager) Remove(ctx context.Context, name string) error {
	sub, err := m.store.Get(ctx, name)
	if err != nil {
		return err
	}

	if err := m.store.Delete(ctx, name); err != nil {
		return err
	}

	m.recordEvent(ctx, sub, EventRemoved)
	m.log.Info("subscription removed", zap.String("name", name))
	return nil
}

// Get retrieves a subscription by name.
// The returned record is a copy; mutating it does not change the registry.
func (m *Manager) Get(ctx context.Context, name string) (*Subscription, error) {
	return m.store.Get(ctx, name)
}

// ListAll returns all subscriptions in the order they were added.
func (m *Manager) ListAll(ctx context.Context) ([]*Subscription, error) {
	return m.store.List(ctx)
}

// ListActive returns the active subscriptions in the order they were added.
func (m *Manager) ListActive(ctx context.Context) ([]*Subscription, error) {
	subs, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive() {
			active = append(active, sub)
		}
	}
	return active, nil
}

// Cancel cancels a subscription by name.
// Cancelling an already cancelled subscription is a no-op, not an error.
// It fails with ErrNotFound if the name is absent.
func (m *Manager) Cancel(ctx context.Context, name string) error {
	sub, err := m.store.Get(ctx, name)
	if err != nil {
		return err
	}
	if sub.IsCancelled() {
		return nil
	}

	sub.Cancel()
	if err := m.store.Update(ctx, sub); err != nil {
		return err
	}

	m.recordEvent(ctx, sub, EventCancelled)
	m.log.Info("subscription cancelled", zap.String("name", name))
	return nil
}

// Renew reactivates a subscription and moves its renewal date.
// It fails with ErrNotFound if the name is absent and with ErrInvalidInput
// if the new date is unset. Renewing an active subscription only moves the
// date.
func (m *Manager) Renew(ctx context.Context, name string, newRenewalDate time.Time) error {
	sub, err := m.store.Get(ctx, name)
	if err != nil {
		return err
	}

	if err := sub.Renew(newRenewalDate); err != nil {
		return err
	}
	if err := m.store.Update(ctx, sub); err != nil {
		return err
	}

	m.recordEvent(ctx, sub, EventRenewed)
	m.log.Info("subscription renewed",
		zap.String("name", name),
		zap.Time("renewal_date", sub.RenewalDate))
	return nil
}

// AutoCancelDue cancels every active subscription whose renewal date falls
// on or before today. Cancelled and future-dated subscriptions are left
// untouched. It returns the names it cancelled, in listing order.
func (m *Manager) AutoCancelDue(ctx context.Context, today time.Time) ([]string, error) {
	if today.IsZero() {
		return nil, fmt.Errorf("%w: sweep date must be set", ErrInvalidInput)
	}

	start := time.Now()
	subs, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var cancelled []string
	for _, sub := range subs {
		if !sub.IsActive() || !sub.DueBy(today) {
			continue
		}

		sub.Cancel()
		if err := m.store.Update(ctx, sub); err != nil {
			return cancelled, fmt.Errorf("failed to cancel %q: %w", sub.Name, err)
		}
		m.recordEvent(ctx, sub, EventAutoCancelled)
		cancelled = append(cancelled, sub.Name)
	}

	m.recordSweep(len(cancelled), time.Since(start))
	if len(cancelled) > 0 {
		m.log.Info("auto-cancel sweep",
			zap.Time("as_of", StartOfDay(today)),
			zap.Strings("cancelled", cancelled))
	}
	return cancelled, nil
}

// TotalActiveMonthlyCost sums the monthly cost of all active subscriptions.
// It returns zero for an empty or fully cancelled registry.
func (m *Manager) TotalActiveMonthlyCost(ctx context.Context) (decimal.Decimal, error) {
	subs, err := m.store.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	count := 0
	for _, sub := range subs {
		if sub.IsActive() {
			total = total.Add(sub.Cost)
			count++
		}
	}

	m.recordTotals(count, total.InexactFloat64())
	return total, nil
}

// TotalSavings sums the monthly cost of all cancelled subscriptions, the
// money no longer being spent.
func (m *Manager) TotalSavings(ctx context.Context) (decimal.Decimal, error) {
	subs, err := m.store.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, sub := range subs {
		if sub.IsCancelled() {
			total = total.Add(sub.Cost)
		}
	}
	return total, nil
}

// History retrieves up to limit lifecycle events, newest first.
// It returns nothing when no event log is configured.
func (m *Manager) History(ctx context.Context, limit int) ([]*Event, error) {
	if m.history == nil {
		return nil, nil
	}
	return m.history.Recent(ctx, limit)
}

// Shutdown stops the Manager. It cancels the manager context and waits for
// the background sweep, if one was started, to exit.
func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) recordEvent(ctx context.Context, sub *Subscription, kind EventKind) {
	m.recordLifecycleMetric(sub.Name, kind)

	if m.history == nil {
		return
	}
	event := &Event{
		Name: sub.Name,
		Kind: kind,
		Cost: sub.Cost,
		At:   m.clock(),
	}
	if err := m.history.Append(ctx, event); err != nil {
		m.log.Warn("failed to record lifecycle event",
			zap.String("name", sub.Name),
			zap.Error(err))
	}
}
